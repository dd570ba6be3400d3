package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/repograde/internal/report"
)

// Markdown renders the document as a standalone markdown report.
// title is used for the top heading when non-empty.
func Markdown(doc report.Document, title string) string {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "# Grading Report for %s\n\n", title)
	} else {
		b.WriteString("# Grading Report\n\n")
	}
	fmt.Fprintf(&b, "## Overall Score: %s\n\n", doc.TotalText())

	if len(doc.CriticalFailures) > 0 {
		fmt.Fprintf(&b, "> **Critical requirement failed:** %s\n\n", strings.Join(doc.CriticalFailures, ", "))
	}

	b.WriteString("## Detailed Breakdown\n\n")
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "### %s (%s)\n\n", s.Title, s.SubtotalText())
		for _, l := range s.Lines {
			writeMarkdownLine(&b, l)
		}
	}

	if len(doc.Unrecognized) > 0 {
		b.WriteString("### Unrecognized Items\n\n")
		for _, l := range doc.Unrecognized {
			writeMarkdownLine(&b, l)
		}
	}

	if doc.HasTimings() {
		b.WriteString("## Timings\n\n")
		b.WriteString("| Stage | Time |\n|---|---|\n")
		for _, t := range doc.Timings {
			fmt.Fprintf(&b, "| %s | %s |\n", t.Label, t.ValueText())
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeMarkdownLine(b *strings.Builder, l report.Line) {
	fmt.Fprintf(b, "#### %s: %s %s", l.Name, l.ScoreText(), l.PercentText())
	if l.OutOfRange {
		b.WriteString(" (out of range)")
	}
	b.WriteString("\n\n")
	b.WriteString(l.Explanation)
	b.WriteString("\n\n")
}
