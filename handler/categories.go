package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/handler/paginate"
	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/pagination"
)

const categoryPostsPerPage = 10

type CategoriesHandler struct {
	Blog *repository.Blog
	TTL  time.Duration
}

func NewCategoriesHandler(blog *repository.Blog) CategoriesHandler {
	return CategoriesHandler{
		Blog: blog,
		TTL:  blog.Source.TTL,
	}
}

func (h CategoriesHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	counts, err := h.Blog.CategoriesWithCounts(r.Context())
	if err != nil {
		return loadError(err)
	}

	return respondShared(w, r, h.TTL, payload.GetCategoriesResponse(counts))
}

func (h CategoriesHandler) Posts(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	category, posts, err := h.Blog.PostsInCategory(r.Context(), payload.GetSlugFrom(r))
	if err != nil {
		return loadError(err)
	}

	if category == nil {
		return endpoint.NotFound("Category not found.")
	}

	page := pagination.Slice(posts, paginate.MakeFrom(r.URL.Query(), categoryPostsPerPage))

	return respondShared(w, r, h.TTL, payload.CategoryPostsResponse{
		Category: *category,
		Posts:    pagination.HydratePagination(page, payload.GetPostResponse),
	})
}
