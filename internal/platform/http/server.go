package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Serve runs srv on ln until ctx is done, then shuts it down, giving
// in-flight requests up to grace to finish. It returns only after Shutdown
// has completed.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	// Serve returns as soon as Shutdown starts.
	if err := <-shutdownDone; err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
