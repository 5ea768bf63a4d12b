package payload

import (
	"encoding/xml"
	"net/url"
	"strings"
)

const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc string `xml:"loc"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemap joins each path onto baseURL, escaping non-ASCII slugs.
func GetSitemap(baseURL string, paths []string) Sitemap {
	baseURL = strings.TrimSuffix(baseURL, "/")
	urls := make([]SitemapURL, 0, len(paths))

	for _, path := range paths {
		urls = append(urls, SitemapURL{Loc: baseURL + (&url.URL{Path: path}).EscapedPath()})
	}

	return Sitemap{Xmlns: SitemapNamespace, URLs: urls}
}
