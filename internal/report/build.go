package report

import (
	"sort"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/rubric"
)

// Build maps a Grade Report onto the rubric. It only reads r.
func Build(r *grader.Report) Document {
	if r == nil {
		r = &grader.Report{}
	}

	doc := Document{TotalScore: r.TotalScore}

	for _, c := range rubric.AllCategories() {
		items := rubric.ItemsIn(c)
		sec := Section{
			Category:       c,
			Title:          rubric.CategoryTitle(c),
			PointsPossible: rubric.PointsPossible(c),
			Lines:          make([]Line, 0, len(items)),
		}
		for _, it := range items {
			line := buildLine(it, r)
			if line.Graded {
				sec.PointsAwarded += line.Awarded
			}
			if it.Critical() && line.Class == ClassZero {
				doc.CriticalFailures = append(doc.CriticalFailures, it.Name)
			}
			sec.Lines = append(sec.Lines, line)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	doc.Unrecognized = unrecognizedLines(r)
	doc.Timings = buildTimings(r.Timings)
	return doc
}

func buildLine(it rubric.Item, r *grader.Report) Line {
	line := Line{Name: it.Name, Max: it.Max}
	line.Awarded, line.Graded = r.Grades[it.Name]
	line.Class = classify(line.Awarded, it.Max, line.Graded)
	line.OutOfRange = line.Graded && (line.Awarded < 0 || line.Awarded > it.Max)
	line.Explanation, line.HasExplanation = explanation(r, it.Name)
	return line
}

func classify(awarded, max float64, graded bool) Class {
	switch {
	case !graded:
		return ClassUngraded
	case awarded == 0:
		return ClassZero
	case awarded == max:
		return ClassPerfect
	default:
		return ClassPartial
	}
}

func explanation(r *grader.Report, name string) (string, bool) {
	if text, ok := r.Explanations[name]; ok && text != "" {
		return text, true
	}
	return ExplanationPlaceholder, false
}

func unrecognizedLines(r *grader.Report) []Line {
	names := make(map[string]bool)
	for name := range r.Grades {
		if _, ok := rubric.Lookup(name); !ok {
			names[name] = true
		}
	}
	for name := range r.Explanations {
		if _, ok := rubric.Lookup(name); !ok {
			names[name] = true
		}
	}
	if len(names) == 0 {
		return nil
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	lines := make([]Line, 0, len(sorted))
	for _, name := range sorted {
		line := Line{Name: name, Class: ClassUnrecognized}
		line.Awarded, line.Graded = r.Grades[name]
		line.Explanation, line.HasExplanation = explanation(r, name)
		lines = append(lines, line)
	}
	return lines
}
