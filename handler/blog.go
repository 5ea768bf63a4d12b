package handler

import (
	"errors"
	baseHttp "net/http"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
)

const postNotFoundMessage = "Post not found."

type BlogHandler struct {
	Blog *repository.Blog
	TTL  time.Duration
}

func NewBlogHandler(blog *repository.Blog) BlogHandler {
	return BlogHandler{
		Blog: blog,
		TTL:  blog.Source.TTL,
	}
}

func (h BlogHandler) Bootstrap(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	data, err := h.Blog.Bootstrap(r.Context())
	if err != nil {
		return loadError(err)
	}

	return respondShared(w, r, h.TTL, data)
}

func (h BlogHandler) DatabaseMap(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	collections, err := h.Blog.Collections.Resolve(r.Context())
	if err != nil {
		return loadError(err)
	}

	if err := endpoint.NewNoCacheResponse(w, r).RespondOk(payload.DatabaseMapResponse{DatabaseMap: collections}); err != nil {
		return endpoint.LogInternalError("could not encode database map", err)
	}

	return nil
}

func (h BlogHandler) Post(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)
	if slug == "" {
		return endpoint.NotFound(postNotFoundMessage)
	}

	data, err := h.Blog.PostDetail(r.Context(), slug)

	switch {
	case errors.Is(err, content.ErrPostNotFound):
		return endpoint.NotFound(postNotFoundMessage)
	case err != nil:
		return loadError(err)
	}

	return respondShared(w, r, h.TTL, data)
}
