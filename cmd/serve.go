package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/repograde/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grading page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd, false); err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ListenAddr = addr
		}

		g, err := newGrader()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := web.NewHTTPServer(cfg.ListenAddr, web.NewHandler(g, logger), cfg.Timeout)
		return web.Run(ctx, srv, logger)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config and REPOGRADE_ADDR)")
}
