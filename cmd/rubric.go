package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/repograde/internal/rubric"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Print the grading rubric grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		categories := rubric.AllCategories()
		if category != "" {
			c := rubric.Category(category)
			if !slices.Contains(rubric.AllCategories(), c) {
				return fmt.Errorf("unknown category %q", category)
			}
			categories = []rubric.Category{c}
		}

		printRubric(cmd.OutOrStdout(), categories)
		return nil
	},
}

func init() {
	rubricCmd.Flags().String("category", "", "Only show one category (critical, documentation, analysis, quality, methodology, technical)")
}

func printRubric(w io.Writer, categories []rubric.Category) {
	for _, c := range categories {
		fmt.Fprintf(w, "%s (%s pts)\n", rubric.CategoryTitle(c), formatMax(rubric.PointsPossible(c)))
		fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, it := range rubric.ItemsIn(c) {
			criteria := it.Criteria
			if len(criteria) > 56 {
				criteria = criteria[:53] + "..."
			}
			fmt.Fprintf(w, "  %-22s %5s  %s\n", it.Name, formatMax(it.Max), criteria)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total possible: %s pts across %d items\n", formatMax(rubric.TotalPossible()), len(rubric.Items()))
}

func formatMax(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
