package kernel

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/metal/router"
	"github.com/paragon0107/notive/pkg/endpoint"
)

func (a *App) SetRouter(router router.Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

// Shutdown stops the background work and flushes pending telemetry.
func (a *App) Shutdown() {
	if a.warmer != nil {
		a.warmer.Stop()
	}

	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("tracer shutdown failed", "error", err)
	}

	if a.sentry != nil {
		sentry.Flush(2 * time.Second)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetBlog() *repository.Blog {
	return a.blog
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}

// Handler is the mux wrapped with the server middleware and sentry.
func (a *App) Handler() baseHttp.Handler {
	cfg := endpoint.ServerHandlerConfig{
		Mux:          a.GetMux(),
		IsProduction: a.IsProduction(),
		DevHost:      a.env.App.URL,
	}

	if a.sentry != nil && a.sentry.Handler != nil {
		cfg.Wrap = a.sentry.Handler.Handle
	}

	return endpoint.NewServerHandler(cfg)
}

func (a *App) NewServer() *baseHttp.Server {
	return &baseHttp.Server{
		Addr:              a.env.Network.GetHostURL(),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
