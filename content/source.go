package content

import (
	"time"

	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

const DefaultTTL = 30 * time.Second

// Source is what every repository needs to reach the upstream workspace.
type Source struct {
	API    notion.API
	Cache  *cache.Memory
	RootID string
	TTL    time.Duration
	Site   Site
}

func NewSource(api notion.API, rootID string, ttl time.Duration, site Site) *Source {
	return &Source{
		API:    api,
		Cache:  cache.NewMemory(),
		RootID: rootID,
		TTL:    ttl,
		Site:   site,
	}
}

// Bootstrap is everything a page render needs up front.
type Bootstrap struct {
	DatabaseMap CollectionMap `json:"database_map"`
	Home        HomeConfig    `json:"home"`
	Posts       []PostSummary `json:"posts"`
}

// PostDetail is a single post with its hydrated body and derived views.
type PostDetail struct {
	DatabaseMap    CollectionMap  `json:"database_map"`
	Posts          []PostSummary  `json:"posts"`
	Post           Post           `json:"post"`
	Blocks         []notion.Block `json:"blocks"`
	Toc            []TocItem      `json:"toc"`
	HTML           string         `json:"html"`
	ReadingMinutes int            `json:"reading_minutes"`
	Previous       *Post          `json:"previous,omitempty"`
	Next           *Post          `json:"next,omitempty"`
	Related        []Post         `json:"related"`
}
