package kernel

import (
	"context"
	"fmt"
	baseHttp "net/http"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/metal/router"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/llogs"
	"github.com/paragon0107/notive/pkg/middleware"
	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/portal"
	"github.com/paragon0107/notive/pkg/scheduler"
)

type App struct {
	router    *router.Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	tracer    *portal.TracerProvider
	validator *portal.Validator
	env       *env.Environment
	blog      *repository.Blog
	warmer    *scheduler.Scheduler
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		tracer:    MakeTracer(env),
	}

	if err := app.wire(MakeNotionClient(env)); err != nil {
		return nil, err
	}

	return &app, nil
}

// wire builds the blog and the routes on top of the given upstream client.
func (a *App) wire(api notion.API) error {
	blog, err := MakeBlog(a.env, api)
	if err != nil {
		return fmt.Errorf("bootstrapping error > could not load the site defaults: %w", err)
	}

	warmer, err := MakeWarmer(a.env, blog)
	if err != nil {
		return fmt.Errorf("bootstrapping error > could not schedule the cache warmer: %w", err)
	}

	a.blog = blog
	a.warmer = warmer

	routes := router.Router{
		Env:     a.env,
		Mux:     baseHttp.NewServeMux(),
		Content: blog,
		Pipeline: middleware.Pipeline{
			Env:              a.env,
			PublicMiddleware: middleware.MakePublicMiddleware(),
		},
	}

	if warmer != nil {
		routes.Warmer = warmer
	}

	a.SetRouter(routes)

	return nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Blog()
	router.Categories()
	router.Series()
	router.Seo()
	router.KeepAlive()
	router.Metrics()
}

// StartWarmer runs the cache warmer until ctx is done. It is a no-op when no
// schedule is configured.
func (a *App) StartWarmer(ctx context.Context) error {
	if a.warmer == nil {
		return nil
	}

	return a.warmer.Start(ctx)
}

// Serve boots the routes, starts the warmer and blocks until the server stops.
func (a *App) Serve() error {
	a.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.StartWarmer(ctx); err != nil {
		return fmt.Errorf("start cache warmer: %w", err)
	}

	return endpoint.RunServer(a.env.Network.GetHostURL(), a.NewServer())
}
