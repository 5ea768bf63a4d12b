package paginate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/paragon0107/notive/pkg/pagination"
)

// MakeFrom reads the page request from a query string. The size is taken
// from "limit" or "page_size". Values that do not parse fall back to the
// defaults and sizes outside 1..MaxLimit become DefaultLimit.
func MakeFrom(query url.Values, defaultLimit int) pagination.Paginate {
	page := intParam(query, pagination.MinPage, "page")
	size := intParam(query, defaultLimit, "limit", "page_size")

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if size < 1 || size > pagination.MaxLimit {
		size = pagination.DefaultLimit
	}

	return pagination.Paginate{Page: page, Limit: size}
}

// intParam returns the first key that holds an integer.
func intParam(query url.Values, fallback int, keys ...string) int {
	for _, key := range keys {
		raw := strings.TrimSpace(query.Get(key))
		if raw == "" {
			continue
		}

		if value, err := strconv.Atoi(raw); err == nil {
			return value
		}
	}

	return fallback
}
