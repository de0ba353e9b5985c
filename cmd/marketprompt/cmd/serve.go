package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(o *rootOptions) *cobra.Command {
	var (
		addr            string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the stateless HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = o.cfg.API.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rate, burst := o.cfg.RateLimit()
			deps := api.Dependencies{
				Logger:      o.logger,
				RateLimiter: api.NewRateLimiter(rate, burst),
			}
			deps.RateLimiter.CleanupRoutine(ctx, api.DefaultCleanupInterval)

			server := api.NewServer(api.Config{Addr: addr}, deps)
			return server.Run(ctx, shutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 5*time.Second, "grace period for in-flight requests")
	return cmd
}
