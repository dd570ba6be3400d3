package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/repograde/internal/ui/theme"
)

// ScoreBar displays an overall score as a horizontal bar coloured by band.
type ScoreBar struct {
	Label   string
	Percent float64 // 0-100
	Width   int
}

// NewScoreBar creates a new score bar.
func NewScoreBar(label string, percent float64, width int) ScoreBar {
	return ScoreBar{Label: label, Percent: percent, Width: width}
}

// Filled returns how many of barWidth cells are filled.
func (p ScoreBar) Filled(barWidth int) int {
	filled := int(float64(barWidth) * p.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the score bar.
func (p ScoreBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Bold(true).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %.2f%%", p.Percent)

	barWidth := p.Width - lipgloss.Width(result) - len(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.Filled(barWidth)

	result += lipgloss.NewStyle().
		Background(bandColor(p.Percent)).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}

func bandColor(percent float64) color.Color {
	switch {
	case percent >= 80:
		return theme.Success
	case percent >= 50:
		return theme.Accent
	default:
		return theme.Error
	}
}
