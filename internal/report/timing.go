package report

import (
	"fmt"
	"sort"
	"strings"
)

// Timing is one row of the timing panel.
type Timing struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Seconds float64 `json:"seconds"`
}

// ValueText renders the elapsed time with two decimals and a seconds suffix.
func (t Timing) ValueText() string {
	return fmt.Sprintf("%.2fs", t.Seconds)
}

var labelReplacer = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// TimingLabel humanises a stage name: separators become spaces, then upper case.
func TimingLabel(key string) string {
	return strings.ToUpper(labelReplacer.Replace(key))
}

func buildTimings(timings map[string]float64) []Timing {
	if timings == nil {
		return nil
	}
	keys := make([]string, 0, len(timings))
	for k := range timings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Timing, 0, len(keys))
	for _, k := range keys {
		out = append(out, Timing{Key: k, Label: TimingLabel(k), Seconds: timings[k]})
	}
	return out
}
