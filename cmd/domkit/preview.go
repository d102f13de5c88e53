package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		port    int
		metrics bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve a live-reloading showcase page",
		Long: `Preview starts a local server that renders a page built with the
domkit constructors. Files listed under preview.watch in domkit.json
trigger a browser reload when they change; --metrics exposes
Prometheus metrics on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Find(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Preview.Port = port
			}
			if metrics {
				cfg.Preview.Metrics = true
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			if cfg.Path() != "" {
				info("using %s", cfg.Path())
			}
			success("preview on http://%s", cfg.Addr())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := preview.NewServer(preview.Options{
				Config: cfg,
				Logger: logger,
			})
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Override the configured port")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
