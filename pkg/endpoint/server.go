package endpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

const DevClientOrigin = "http://localhost:3000"

// ShutdownGrace bounds how long in-flight requests may drain on shutdown.
var ShutdownGrace = 10 * time.Second

// RunServer serves until the listener fails or the process receives SIGINT
// or SIGTERM.
func RunServer(addr string, server *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, addr, server)
}

// Serve runs server until ctx is done and then shuts it down gracefully,
// forcing the close once ShutdownGrace runs out.
func Serve(ctx context.Context, addr string, server *http.Server) error {
	if server == nil {
		return errors.New("nil http server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	slog.Info("starting server", slog.String("address", addr))

	select {
	case err := <-errCh:
		return listenError(err)
	case <-ctx.Done():
		slog.Info("shutdown requested", slog.String("address", addr), "cause", context.Cause(ctx))
	}

	return drain(addr, server, errCh)
}

func drain(addr string, server *http.Server, errCh <-chan error) error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownGrace)
	defer cancel()

	err := server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		slog.Warn("graceful shutdown timed out, forcing close", slog.String("address", addr))
		err = server.Close()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown server: %w", err)
	}

	if err := listenError(<-errCh); err != nil {
		return err
	}

	slog.Info("server stopped", slog.String("address", addr))

	return nil
}

func listenError(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return fmt.Errorf("listen and serve: %w", err)
}

// ServerHandlerConfig describes the dependencies required to construct the
// HTTP handler exposed by the API server.
type ServerHandlerConfig struct {
	Mux          http.Handler
	IsProduction bool
	DevHost      string
	Wrap         func(http.Handler) http.Handler
}

// NewServerHandler recovers panics and gzips responses for every route. Outside
// production it also opens CORS for the local blog client, and it applies the
// optional Wrap (sentry instrumentation) last.
func NewServerHandler(cfg ServerHandlerConfig) http.Handler {
	if cfg.Mux == nil {
		return http.NotFoundHandler()
	}

	handler := middleware.Compress(5)(cfg.Mux)
	handler = middleware.Recoverer(handler)

	if !cfg.IsProduction {
		origins := []string{DevClientOrigin}
		if host := cfg.DevHost; host != "" {
			origins = append(origins, host)
		}

		c := cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "User-Agent", "X-Request-ID", "If-None-Match"},
			ExposedHeaders: []string{"ETag", "X-Request-ID"},
		})

		handler = c.Handler(handler)
	}

	if cfg.Wrap != nil {
		handler = cfg.Wrap(handler)
	}

	return handler
}
