package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Run serves handler on cfg.Address until ctx is cancelled, then gives
// outstanding requests cfg's shutdown timeout to complete.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, handler http.Handler) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "server.Run"),
			zap.String("address", cfg.Address),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutdown initiated",
			zap.String("op", "server.Run"),
			zap.Duration("timeout", cfg.ShutdownTimeoutDuration()),
		)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "server.Run"),
				zap.Error(err),
			)
			err = srv.Close()
		}
		return err
	}
}
