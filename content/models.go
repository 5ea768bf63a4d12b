package content

import "github.com/paragon0107/notive/pkg/blocks"

// CollectionMap holds the ids of the four collections under the root page.
type CollectionMap struct {
	PostsID    string `json:"posts_id"`
	ProjectsID string `json:"projects_id"`
	ContactsID string `json:"contacts_id"`
	HomeID     string `json:"home_id"`
}

type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Order       *float64 `json:"order,omitempty"`
	IsPinned    bool     `json:"is_pinned"`
	Color       string   `json:"color,omitempty"`
}

type Series struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Order       *float64 `json:"order,omitempty"`
	PostIDs     []string `json:"post_ids"`
}

type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Date         string     `json:"date,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Categories   []Category `json:"categories"`
	Series       []Series   `json:"series,omitempty"`
	AuthorNames  []string   `json:"author_names"`
}

// PostSummary is a Post plus the lower-cased text used by client search.
type PostSummary struct {
	Post
	SearchText string `json:"search_text"`
}

type Project struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Link    string   `json:"link,omitempty"`
	IconURL string   `json:"icon_url,omitempty"`
	Order   *float64 `json:"order,omitempty"`
}

type Contact struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Label   string   `json:"label"`
	Value   string   `json:"value"`
	IconURL string   `json:"icon_url,omitempty"`
	Order   *float64 `json:"order,omitempty"`
}

type HomeConfig struct {
	BlogName                  string     `json:"blog_name"`
	AboutMe                   string     `json:"about_me"`
	ProfileName               string     `json:"profile_name,omitempty"`
	ProfileImageURL           string     `json:"profile_image_url,omitempty"`
	Categories                []Category `json:"categories"`
	Projects                  []Project  `json:"projects"`
	Contacts                  []Contact  `json:"contacts"`
	UseNotionProfileAsDefault bool       `json:"use_notion_profile_as_default"`
}

type Profile struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Role     string `json:"role"`
	BlogName string `json:"blog_name"`
}

type TocItem = blocks.TocItem

// Ordered is implemented by every entity sorted by its Order field.
type Ordered interface {
	SortOrder() float64
}

func orderOf(order *float64) float64 {
	if order == nil {
		return 0
	}

	return *order
}

func (c Category) SortOrder() float64 { return orderOf(c.Order) }
func (s Series) SortOrder() float64   { return orderOf(s.Order) }
func (p Project) SortOrder() float64  { return orderOf(p.Order) }
func (c Contact) SortOrder() float64  { return orderOf(c.Order) }
