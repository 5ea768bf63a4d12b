package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
)

type SeriesHandler struct {
	Blog *repository.Blog
	TTL  time.Duration
}

func NewSeriesHandler(blog *repository.Blog) SeriesHandler {
	return SeriesHandler{
		Blog: blog,
		TTL:  blog.Source.TTL,
	}
}

func (h SeriesHandler) Posts(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	series, posts, err := h.Blog.PostsInSeries(r.Context(), payload.GetSlugFrom(r))
	if err != nil {
		return loadError(err)
	}

	if series == nil {
		return endpoint.NotFound("Series not found.")
	}

	return respondShared(w, r, h.TTL, payload.SeriesPostsResponse{
		Series: *series,
		Posts:  posts,
	})
}
