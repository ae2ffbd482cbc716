package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"speechbench/cmd/speechbench/cmd/shared"
	"speechbench/internal/api/server"
	"speechbench/internal/app/logging"
)

var (
	host            string
	port            string
	shutdownTimeout time.Duration
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "listen host (overrides config)")
	Cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides config)")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period for in-flight requests")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the benchmark website and JSON API",
	Long: `Serve the benchmark website and JSON API.

- HTML pages: /, /leaderboard, /compare, /calculator, /quiz
- JSON API under /api/v1, health on /health, Prometheus metrics on /metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := shared.LoadConfig()
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port != "" {
			cfg.Server.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err := logging.NewLogger(!cfg.IsProduction())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()

		application, err := shared.LoadApplicationWith(cfg, logger)
		if err != nil {
			return err
		}

		srv, err := server.NewServer(application)
		if err != nil {
			return err
		}
		if err := srv.Start(); err != nil {
			return err
		}

		// Handle shutdown gracefully
		shutdownCh := make(chan os.Signal, 1)
		signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
		sig := <-shutdownCh
		logger.Info("Received signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
