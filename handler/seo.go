package handler

import (
	"encoding/xml"
	"fmt"
	baseHttp "net/http"
	"strings"

	"github.com/paragon0107/notive/content/repository"
	"github.com/paragon0107/notive/handler/payload"
	"github.com/paragon0107/notive/pkg/endpoint"
	"github.com/paragon0107/notive/pkg/portal"
)

const seoMaxAge = 3600

type SeoHandler struct {
	Blog         *repository.Blog
	SiteURL      string
	IsProduction bool
}

func NewSeoHandler(blog *repository.Blog, siteURL string, isProduction bool) SeoHandler {
	return SeoHandler{
		Blog:         blog,
		SiteURL:      strings.TrimSuffix(strings.TrimSpace(siteURL), "/"),
		IsProduction: isProduction,
	}
}

func (h SeoHandler) baseURL(r *baseHttp.Request) string {
	if h.SiteURL != "" {
		return h.SiteURL
	}

	return portal.BaseURL(r)
}

func (h SeoHandler) Sitemap(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	paths, err := h.Blog.SitemapPaths(r.Context())
	if err != nil {
		return loadError(err)
	}

	body, err := xml.MarshalIndent(payload.GetSitemap(h.baseURL(r), paths), "", "  ")
	if err != nil {
		return endpoint.LogInternalError("could not encode sitemap", err)
	}

	resp := endpoint.NewResponseWithCache("", seoMaxAge, w, r).WithContentType("application/xml; charset=utf-8")

	if err := resp.RespondRaw(append([]byte(xml.Header), body...)); err != nil {
		return endpoint.LogInternalError("could not write sitemap", err)
	}

	return nil
}

// Robots allows crawling in production only and always points at the sitemap.
func (h SeoHandler) Robots(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	rule := "Disallow: /"
	if h.IsProduction {
		rule = "Allow: /"
	}

	base := h.baseURL(r)
	body := fmt.Sprintf("User-agent: *\n%s\n\nHost: %s\nSitemap: %s/sitemap.xml\n", rule, base, base)

	resp := endpoint.NewResponseWithCache("", seoMaxAge, w, r).WithContentType("text/plain; charset=utf-8")

	if err := resp.RespondRaw([]byte(body)); err != nil {
		return endpoint.LogInternalError("could not write robots", err)
	}

	return nil
}
