package blogapi

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/cache"
	"github.com/paragon0107/notive/pkg/notion"
)

const DefaultTTL = 30 * time.Second

const (
	databaseMapKey = "blogapi:database-map"
	bootstrapKey   = "blogapi:bootstrap"
)

// Store keeps what a reader has already fetched from the API. Every Ensure
// call goes through the cache, so repeated calls inside the TTL never leave
// the process and concurrent calls for the same key share one request.
type Store struct {
	client *Client
	cache  *cache.Memory
	ttl    time.Duration

	mu          sync.RWMutex
	databaseMap *content.CollectionMap
	home        *content.HomeConfig
	posts       []content.PostSummary
	postBySlug  map[string]content.PostSummary
	aliases     map[string]string
	blocksByID  map[string][]notion.Block
}

func NewStore(client *Client) *Store {
	return &Store{
		client:     client,
		cache:      cache.NewMemory(),
		ttl:        DefaultTTL,
		postBySlug: map[string]content.PostSummary{},
		aliases:    map[string]string{},
		blocksByID: map[string][]notion.Block{},
	}
}

func (s *Store) EnsureDatabaseMap(ctx context.Context) (content.CollectionMap, error) {
	dbMap, err := cache.GetOrSet(ctx, s.cache, databaseMapKey, s.ttl, s.client.FetchDatabaseMap)
	if err != nil {
		return content.CollectionMap{}, err
	}

	s.mu.Lock()
	s.databaseMap = &dbMap
	s.mu.Unlock()

	return dbMap, nil
}

func (s *Store) EnsureBootstrap(ctx context.Context) error {
	payload, err := cache.GetOrSet(ctx, s.cache, bootstrapKey, s.ttl, s.client.FetchBootstrap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.databaseMap = &payload.DatabaseMap
	s.home = &payload.Home
	s.posts = mergePosts(s.posts, payload.Posts)
	s.reindex()

	return nil
}

func (s *Store) EnsurePostDetail(ctx context.Context, slug string) (content.PostDetail, error) {
	wanted := strings.TrimSpace(slug)
	if wanted == "" {
		return content.PostDetail{}, ErrEmptySlug
	}

	if _, err := s.EnsureDatabaseMap(ctx); err != nil {
		return content.PostDetail{}, err
	}

	detail, err := cache.GetOrSet(ctx, s.cache, "blogapi:post:"+wanted, s.ttl, func(ctx context.Context) (content.PostDetail, error) {
		return s.client.FetchPostDetail(ctx, wanted)
	})
	if err != nil {
		return content.PostDetail{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.databaseMap = &detail.DatabaseMap
	s.posts = mergePosts(s.posts, detail.Posts)
	s.blocksByID[detail.Post.ID] = detail.Blocks

	if wanted != detail.Post.Slug {
		s.aliases[wanted] = detail.Post.ID
	}

	s.reindex()

	if _, ok := s.postBySlug[wanted]; !ok {
		s.postBySlug[wanted] = content.PostSummary{Post: detail.Post}
	}

	return detail, nil
}

func (s *Store) DatabaseMap() (content.CollectionMap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.databaseMap == nil {
		return content.CollectionMap{}, false
	}

	return *s.databaseMap, true
}

func (s *Store) Home() (content.HomeConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.home == nil {
		return content.HomeConfig{}, false
	}

	return *s.home, true
}

func (s *Store) Posts() []content.PostSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]content.PostSummary(nil), s.posts...)
}

func (s *Store) PostBySlug(slug string) (content.PostSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.postBySlug[strings.TrimSpace(slug)]

	return post, ok
}

func (s *Store) Blocks(postID string) ([]notion.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks, ok := s.blocksByID[postID]

	return blocks, ok
}

// mergePosts replaces existing posts by id and keeps the result sorted by
// date, newest first.
func mergePosts(existing, incoming []content.PostSummary) []content.PostSummary {
	byID := make(map[string]int, len(existing)+len(incoming))
	out := make([]content.PostSummary, 0, len(existing)+len(incoming))

	for _, list := range [][]content.PostSummary{existing, incoming} {
		for _, post := range list {
			if i, ok := byID[post.ID]; ok {
				out[i] = post
				continue
			}

			byID[post.ID] = len(out)
			out = append(out, post)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	return out
}

// reindex rebuilds the slug lookup from the posts and the slugs that were
// requested in a non-canonical form. Callers hold s.mu.
func (s *Store) reindex() {
	s.postBySlug = make(map[string]content.PostSummary, len(s.posts)+len(s.aliases))

	byID := make(map[string]content.PostSummary, len(s.posts))
	for _, post := range s.posts {
		s.postBySlug[post.Slug] = post
		byID[post.ID] = post
	}

	for alias, id := range s.aliases {
		if _, taken := s.postBySlug[alias]; taken {
			continue
		}

		if post, ok := byID[id]; ok {
			s.postBySlug[alias] = post
		}
	}
}
