package router

import (
	baseHttp "net/http"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/handler"
	"github.com/paragon0107/notive/metal/env"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Content  *repository.Blog
	Warmer   handler.WarmReporter
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(r.Pipeline.Public(apiHandler))
}

// PlainPipelineFor skips the public middleware for infrastructure routes.
func (r *Router) PlainPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(r.Pipeline.Chain(apiHandler))
}

func (r *Router) Blog() {
	abstract := handler.NewBlogHandler(r.Content)

	r.Mux.HandleFunc("GET /api/blog/bootstrap", r.PublicPipelineFor(abstract.Bootstrap))
	r.Mux.HandleFunc("GET /api/blog/database-map", r.PublicPipelineFor(abstract.DatabaseMap))
	r.Mux.HandleFunc("GET /api/blog/post/{slug}", r.PublicPipelineFor(abstract.Post))
}

func (r *Router) Categories() {
	abstract := handler.NewCategoriesHandler(r.Content)

	r.Mux.HandleFunc("GET /api/blog/categories", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("GET /api/blog/categories/{slug}/posts", r.PublicPipelineFor(abstract.Posts))
}

func (r *Router) Series() {
	abstract := handler.NewSeriesHandler(r.Content)

	r.Mux.HandleFunc("GET /api/blog/series/{slug}/posts", r.PublicPipelineFor(abstract.Posts))
}

func (r *Router) Seo() {
	abstract := handler.NewSeoHandler(r.Content, r.Env.App.URL, r.Env.App.IsProduction())

	r.Mux.HandleFunc("GET /sitemap.xml", r.PlainPipelineFor(abstract.Sitemap))
	r.Mux.HandleFunc("GET /robots.txt", r.PlainPipelineFor(abstract.Robots))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakePingHandler(r.Warmer)

	r.Mux.HandleFunc("GET /ping", r.PlainPipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}
