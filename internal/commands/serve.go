package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskcall/taskcall"
	"github.com/taskcall/taskcall/api"
	"github.com/taskcall/taskcall/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dispatcher over HTTP",
	Long: `Serve starts an HTTP server exposing the dispatcher:

  POST /v1/execute   dispatch an invocation string
  GET  /v1/tasks     list registered task names
  GET  /healthz      liveness probe
  GET  /metrics      Prometheus metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := buildLogger()

		d, err := buildDispatcher(logger,
			taskcall.WithExtension(observability.NewMetricsExtension()))
		if err != nil {
			return err
		}

		addr := viper.GetString("addr")
		srv := &http.Server{
			Addr:              addr,
			Handler:           api.New(d).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
		case <-ctx.Done():
			logger.Info("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err.Error())
		}
		return d.Stop(shutdownCtx)
	},
}
