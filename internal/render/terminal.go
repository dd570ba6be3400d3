package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/repograde/internal/report"
	"github.com/abhisek/repograde/internal/ui/theme"
)

// DefaultGlamourStyle is used when no style is configured.
const DefaultGlamourStyle = "dark"

// Terminal renders documents for a terminal of a given width.
type Terminal struct {
	width    int
	renderer *glamour.TermRenderer
}

// NewTerminal creates a terminal formatter. style is a glamour standard
// style name ("dark", "light", "notty", "ascii", ...).
func NewTerminal(width int, style string) (*Terminal, error) {
	if width < 40 {
		width = 40
	}
	if style == "" {
		style = DefaultGlamourStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-explanationIndent),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Terminal{width: width, renderer: r}, nil
}

const explanationIndent = 4

// Render produces the full report as styled text.
func (t *Terminal) Render(doc report.Document) (string, error) {
	var sections []string

	sections = append(sections, theme.Title.Render("Overall Score: "+doc.TotalText()))
	if len(doc.CriticalFailures) > 0 {
		sections = append(sections, theme.Warning.Render(
			"Critical requirement failed: "+strings.Join(doc.CriticalFailures, ", ")))
	}

	for _, s := range doc.Sections {
		block, err := t.renderSection(s.Title, s.SubtotalText(), s.Lines)
		if err != nil {
			return "", err
		}
		sections = append(sections, block)
	}

	if len(doc.Unrecognized) > 0 {
		block, err := t.renderSection("Unrecognized Items", "", doc.Unrecognized)
		if err != nil {
			return "", err
		}
		sections = append(sections, block)
	}

	if doc.HasTimings() {
		sections = append(sections, renderTimings(doc.Timings))
	}

	return strings.Join(sections, "\n\n"), nil
}

func (t *Terminal) renderSection(title, subtotal string, lines []report.Line) (string, error) {
	header := theme.SectionHeader.Render(title)
	if subtotal != "" {
		header += "  " + theme.Subtitle.Render(subtotal)
	}

	parts := []string{header}
	for _, l := range lines {
		explanation, err := t.renderMarkdown(l.Explanation)
		if err != nil {
			return "", err
		}
		parts = append(parts, renderLineHeader(l), explanation)
	}
	return strings.Join(parts, "\n"), nil
}

func (t *Terminal) renderMarkdown(src string) (string, error) {
	out, err := t.renderer.Render(src)
	if err != nil {
		return "", fmt.Errorf("render explanation: %w", err)
	}
	return lipgloss.NewStyle().
		PaddingLeft(explanationIndent).
		Render(strings.Trim(out, "\n")), nil
}

func renderLineHeader(l report.Line) string {
	style := ClassStyle(l.Class)
	line := "  " + style.Render("● "+l.Name) + "  " +
		style.Render(l.ScoreText()+" "+l.PercentText())
	if l.OutOfRange {
		line += "  " + theme.Warning.Render("out of range")
	}
	return line
}

func renderTimings(timings []report.Timing) string {
	width := 0
	for _, t := range timings {
		width = max(width, lipgloss.Width(t.Label))
	}
	parts := []string{theme.SectionHeader.Render("Timings")}
	for _, t := range timings {
		parts = append(parts, fmt.Sprintf("  %-*s  %s", width, t.Label, t.ValueText()))
	}
	return strings.Join(parts, "\n")
}

// ClassStyle returns the colour style for a score class.
func ClassStyle(c report.Class) lipgloss.Style {
	switch c {
	case report.ClassPerfect:
		return theme.ScorePerfect
	case report.ClassPartial:
		return theme.ScorePartial
	case report.ClassZero:
		return theme.ScoreZero
	case report.ClassUnrecognized:
		return theme.ScoreUnrecognized
	default:
		return theme.ScoreUngraded
	}
}
