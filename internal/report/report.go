// Package report turns a Grade Report into a display-independent tree of
// sections and score lines. Formatters in internal/render serialise it.
package report

import (
	"fmt"
	"strconv"

	"github.com/abhisek/repograde/internal/rubric"
)

// Class is the colour classification of a score line.
type Class string

const (
	ClassUngraded     Class = "ungraded"
	ClassZero         Class = "zero"
	ClassPerfect      Class = "perfect"
	ClassPartial      Class = "partial"
	ClassUnrecognized Class = "unrecognized"
)

const (
	NotGradedText          = "not graded"
	PercentPlaceholder     = "(n/a)"
	ExplanationPlaceholder = "No explanation provided."
)

// Line is one rubric item as displayed.
type Line struct {
	Name    string  `json:"name"`
	Max     float64 `json:"max"`
	Awarded float64 `json:"awarded"`
	Graded  bool    `json:"graded"`
	Class   Class   `json:"class"`

	// OutOfRange is set when the awarded score lies outside [0, Max].
	// Scores are displayed as received, never clamped.
	OutOfRange bool `json:"out_of_range,omitempty"`

	// Explanation is markdown; ExplanationPlaceholder when none was given.
	Explanation    string `json:"explanation"`
	HasExplanation bool   `json:"has_explanation"`
}

// ScoreText renders "awarded/max", or NotGradedText.
func (l Line) ScoreText() string {
	if !l.Graded {
		return NotGradedText
	}
	if l.Class == ClassUnrecognized {
		return formatPoints(l.Awarded) + "/?"
	}
	return formatPoints(l.Awarded) + "/" + formatPoints(l.Max)
}

// Percent returns awarded/max*100 when it is defined.
func (l Line) Percent() (float64, bool) {
	if !l.Graded || l.Max <= 0 {
		return 0, false
	}
	return l.Awarded / l.Max * 100, true
}

// PercentText renders the percentage with one decimal, e.g. "(100.0%)".
func (l Line) PercentText() string {
	p, ok := l.Percent()
	if !ok {
		return PercentPlaceholder
	}
	return fmt.Sprintf("(%.1f%%)", p)
}

// Section is one category block.
type Section struct {
	Category       rubric.Category `json:"category"`
	Title          string          `json:"title"`
	PointsAwarded  float64         `json:"points_awarded"`
	PointsPossible float64         `json:"points_possible"`
	Lines          []Line          `json:"lines"`
}

// Critical reports whether this is the critical requirements section.
func (s Section) Critical() bool {
	return s.Category == rubric.CategoryCritical
}

// SubtotalText renders "awarded/possible".
func (s Section) SubtotalText() string {
	return formatPoints(s.PointsAwarded) + "/" + formatPoints(s.PointsPossible)
}

// Document is the complete report tree for one Grade Report.
type Document struct {
	TotalScore float64   `json:"total_score"`
	Sections   []Section `json:"sections"`

	// Unrecognized holds grades or explanations for names missing from the
	// rubric. They never contribute to a subtotal.
	Unrecognized []Line `json:"unrecognized,omitempty"`

	// CriticalFailures names critical items that were graded zero.
	CriticalFailures []string `json:"critical_failures,omitempty"`

	// Timings is nil when the Grade Report carried none.
	Timings []Timing `json:"timings,omitempty"`
}

// TotalText renders the overall percentage, e.g. "87.50%".
func (d Document) TotalText() string {
	return fmt.Sprintf("%.2f%%", d.TotalScore)
}

// HasTimings reports whether the timing panel should be shown.
func (d Document) HasTimings() bool {
	return d.Timings != nil
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
