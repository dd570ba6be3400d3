package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/repograde/internal/app"
)

// runApp loads configuration, builds the grader, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if err := setup(cmd, true); err != nil {
		return err
	}

	g, err := newGrader()
	if err != nil {
		return fmt.Errorf("create grader: %w", err)
	}

	return app.Run(cmd.Context(), app.Options{
		Grader:       g,
		Endpoint:     cfg.Endpoint,
		GlamourStyle: cfg.GlamourStyle,
		Logger:       logger,
	})
}
