package payload

import (
	"net/http"
	"strings"
)

func GetSlugFrom(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
}
