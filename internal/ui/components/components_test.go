package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextInputValueTrimmed(t *testing.T) {
	ti := NewTextInput("url", 0)
	ti.Model.SetValue("  https://github.com/o/r \t")
	assert.Equal(t, "https://github.com/o/r", ti.Value())
}

func TestButtonDisabledShowsBusyLabel(t *testing.T) {
	b := NewButton("Grade Repository", "Grading...")
	assert.Contains(t, b.View(), "Grade Repository")

	b.Disabled = true
	assert.Contains(t, b.View(), "Grading...")
	assert.NotContains(t, b.View(), "Grade Repository")
}

func TestSpinnerAdvanceWraps(t *testing.T) {
	var s Spinner
	for range spinnerFrames {
		s = s.Advance()
	}
	assert.Equal(t, 0, s.frame)
	assert.Contains(t, s.View("working"), "working")
}

func TestScoreBarFilled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 10},
		{100, 20},
		{150, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewScoreBar("", tt.percent, 40).Filled(20), "percent %v", tt.percent)
	}
}

func TestScoreBarViewShowsPercent(t *testing.T) {
	assert.Contains(t, NewScoreBar("Overall", 42.5, 60).View(), "42.50%")
}
