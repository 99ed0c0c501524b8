package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Handler exposes the mapped routes, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("httpserver.Run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.l.Info(ctx, "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver.Run: shutdown: %w", err)
	}
	return nil
}
