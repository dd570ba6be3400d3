package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/repograde/internal/config"
	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/logging"
)

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "repograde",
	Short: "Grade a research repository against the rubric",
	Long: "repograde submits a repository URL to the grading service and renders the\n" +
		"rubric scores by category. Without a subcommand it starts the interactive UI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides REPOGRADE_CONFIG env var)")
	pf.String("endpoint", "", "Grading API endpoint (overrides config and REPOGRADE_ENDPOINT)")
	pf.Duration("timeout", 0, "Timeout for one grading request, e.g. 90s")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: json or console")
	pf.String("log-file", "", "Write logs to this file")
	pf.BoolP("verbose", "v", false, "Shorthand for --log-level=debug")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration: defaults, then the YAML file from
// --config or REPOGRADE_CONFIG, then REPOGRADE_* env vars, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = os.Getenv("REPOGRADE_CONFIG")
	}

	c, err := config.Load(path)
	if err != nil {
		return c, err
	}

	if v, _ := flags.GetString("endpoint"); v != "" {
		c.Endpoint = v
	}
	if v, _ := flags.GetDuration("timeout"); v > 0 {
		c.Timeout = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		c.Log.Level = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		c.Log.Format = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		c.Log.File = v
	}
	if v, _ := flags.GetBool("verbose"); v {
		c.Log.Level = "debug"
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

// setup loads configuration and initialises the package logger. The
// interactive UI discards logs unless a log file is configured.
func setup(cmd *cobra.Command, interactive bool) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c

	build := logging.New
	if interactive {
		build = logging.NewForTUI
	}
	l, err := build(cfg.Log)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("configuration loaded",
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", cfg.Timeout))
	return nil
}

// newGrader builds the production grader from the loaded configuration.
func newGrader() (grader.Grader, error) {
	return grader.New(grader.Options{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}, logger)
}
