package rubric

// Category groups rubric items for display and subtotals.
type Category string

const (
	CategoryCritical      Category = "critical"
	CategoryDocumentation Category = "documentation"
	CategoryAnalysis      Category = "analysis"
	CategoryQuality       Category = "quality"
	CategoryMethodology   Category = "methodology"
	CategoryTechnical     Category = "technical"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCritical,
		CategoryDocumentation,
		CategoryAnalysis,
		CategoryQuality,
		CategoryMethodology,
		CategoryTechnical,
	}
}

// CategoryTitle returns the section heading for a category.
func CategoryTitle(c Category) string {
	switch c {
	case CategoryCritical:
		return "Critical Requirements"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryAnalysis:
		return "Analysis"
	case CategoryQuality:
		return "Quality"
	case CategoryMethodology:
		return "Methodology"
	case CategoryTechnical:
		return "Technical"
	default:
		return string(c)
	}
}
