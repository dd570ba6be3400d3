package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/render"
	"github.com/abhisek/repograde/internal/report"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <repository-url>",
	Short: "Grade one repository and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		width, _ := cmd.Flags().GetInt("width")

		if err := setup(cmd, false); err != nil {
			return err
		}

		g, err := newGrader()
		if err != nil {
			return fmt.Errorf("create grader: %w", err)
		}

		repoURL := args[0]
		rep, err := grader.NewSession(g).Submit(cmd.Context(), repoURL)
		if err != nil {
			return errors.New(grader.UserMessage(err))
		}

		text, err := formatDocument(report.Build(rep), repoURL, format, width, cfg.GlamourStyle)
		if err != nil {
			return err
		}

		if out == "" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		}
		if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", out)
		return nil
	},
}

func init() {
	gradeCmd.Flags().StringP("format", "f", "terminal", "Output format: terminal, html, md, json")
	gradeCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	gradeCmd.Flags().Int("width", 100, "Wrap width for terminal output")
}

// formatDocument serialises doc in the requested output format.
func formatDocument(doc report.Document, repoURL, format string, width int, style string) (string, error) {
	switch format {
	case "terminal", "":
		term, err := render.NewTerminal(width, style)
		if err != nil {
			return "", err
		}
		text, err := term.Render(doc)
		if err != nil {
			return "", err
		}
		return "Grading Report for " + repoURL + "\n\n" + text, nil
	case "html":
		html, err := render.HTML(doc)
		if err != nil {
			return "", err
		}
		return string(html), nil
	case "md", "markdown":
		return render.Markdown(doc, repoURL), nil
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode report: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown format %q (want terminal, html, md or json)", format)
	}
}
