package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domkit/pkg/server"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

Pages are rebuilt on every request. With live reload enabled the
server watches the specs directory and refreshes open pages when a
spec changes.

Examples:
  domkit serve
  domkit serve --port=8080
  domkit serve --host=0.0.0.0 --no-reload`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if noReload {
				cfg.Server.LiveReload = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			poll, err := cfg.PollDuration()
			if err != nil {
				return err
			}

			srv := server.New(cfg.SpecsPath(), server.Config{
				Address:      cfg.Address(),
				LiveReload:   cfg.Server.LiveReload,
				PollInterval: poll,
				MetricsPath:  cfg.Server.MetricsPath,
				Logger:       logger,
			}, siteOptions(cfg, logger)...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			success(out, "Serving %s", cfg.SpecsPath())
			info(out, "Local: %s", cfg.URL())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from domkit.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domkit.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
