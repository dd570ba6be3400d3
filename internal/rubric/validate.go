package rubric

import (
	"fmt"
	"strings"
)

// validateItems performs structural checks on the rubric table.
// Returns a combined error describing all problems found, or nil if valid.
func validateItems(items []Item) error {
	var errs []string

	known := make(map[Category]bool)
	for _, c := range AllCategories() {
		known[c] = true
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.Name == "" {
			errs = append(errs, "item with empty name")
		}
		if seen[it.Name] {
			errs = append(errs, fmt.Sprintf("duplicate item: %q", it.Name))
		}
		seen[it.Name] = true
		if it.Max <= 0 {
			errs = append(errs, fmt.Sprintf("item %q has non-positive max %v", it.Name, it.Max))
		}
		if !known[it.Category] {
			errs = append(errs, fmt.Sprintf("item %q has unknown category %q", it.Name, it.Category))
		}
	}

	// Items must be listed category by category in display order.
	order := make(map[Category]int)
	for i, c := range AllCategories() {
		order[c] = i
	}
	for i := 1; i < len(items); i++ {
		if order[items[i].Category] < order[items[i-1].Category] {
			errs = append(errs, fmt.Sprintf("item %q is out of category order", items[i].Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("rubric validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
