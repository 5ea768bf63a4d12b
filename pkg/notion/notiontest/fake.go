// Package notiontest provides an in-memory upstream for tests.
package notiontest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/paragon0107/notive/pkg/notion"
)

const (
	OpQuery    = "query_database"
	OpChildren = "list_block_children"
	OpRetrieve = "retrieve_database"
)

// Fake serves databases, rows and block children from memory and counts
// every call by operation.
type Fake struct {
	// PageSize caps every listing page, forcing multi-page reads when small.
	PageSize int
	// Err, when set, is returned by every call.
	Err error

	mu        sync.Mutex
	databases map[string]notion.Database
	rows      map[string][]json.RawMessage
	children  map[string][]json.RawMessage
	calls     map[string]int
}

var _ notion.API = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		databases: map[string]notion.Database{},
		rows:      map[string][]json.RawMessage{},
		children:  map[string][]json.RawMessage{},
		calls:     map[string]int{},
	}
}

func (f *Fake) AddDatabase(db notion.Database) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.databases[db.ID] = db

	return f
}

func (f *Fake) AddRows(databaseID string, pages ...notion.Page) *Fake {
	for _, page := range pages {
		f.AddRawRow(databaseID, mustMarshal(page))
	}

	return f
}

// AddRawRow stores a row as is, which lets tests inject partial objects.
func (f *Fake) AddRawRow(databaseID string, raw json.RawMessage) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rows[databaseID] = append(f.rows[databaseID], raw)

	return f
}

func (f *Fake) AddChildren(blockID string, blocks ...notion.Block) *Fake {
	for _, block := range blocks {
		f.AddRawChild(blockID, mustMarshal(block))
	}

	return f
}

func (f *Fake) AddRawChild(blockID string, raw json.RawMessage) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.children[blockID] = append(f.children[blockID], raw)

	return f
}

func (f *Fake) Calls(operation string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[operation]
}

func (f *Fake) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.calls {
		total += n
	}

	return total
}

func (f *Fake) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = map[string]int{}
}

func (f *Fake) QueryDatabase(ctx context.Context, databaseID string, req notion.QueryRequest) (notion.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpQuery]++

	if err := f.check(ctx); err != nil {
		return notion.List{}, err
	}

	rows, ok := f.rows[databaseID]
	if !ok {
		if _, known := f.databases[databaseID]; !known {
			return notion.List{}, notFound(databaseID)
		}
	}

	matched := make([]json.RawMessage, 0, len(rows))
	for _, raw := range rows {
		if matches(raw, req.Filter) {
			matched = append(matched, raw)
		}
	}

	return f.page(matched, req.StartCursor, req.PageSize)
}

func (f *Fake) ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) (notion.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpChildren]++

	if err := f.check(ctx); err != nil {
		return notion.List{}, err
	}

	return f.page(f.children[blockID], cursor, pageSize)
}

func (f *Fake) RetrieveDatabase(ctx context.Context, databaseID string) (notion.Database, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls[OpRetrieve]++

	if err := f.check(ctx); err != nil {
		return notion.Database{}, err
	}

	db, ok := f.databases[databaseID]
	if !ok {
		return notion.Database{}, notFound(databaseID)
	}

	return db, nil
}

func (f *Fake) check(ctx context.Context) error {
	if f.Err != nil {
		return f.Err
	}

	return ctx.Err()
}

func (f *Fake) page(items []json.RawMessage, cursor string, size int) (notion.List, error) {
	start := 0

	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 || n > len(items) {
			return notion.List{}, &notion.APIError{Status: 400, Code: "validation_error", Message: "invalid start_cursor"}
		}

		start = n
	}

	if size <= 0 {
		size = notion.MaxPageSize
	}

	if f.PageSize > 0 && f.PageSize < size {
		size = f.PageSize
	}

	end := min(start+size, len(items))
	list := notion.List{
		Object:  notion.ObjectList,
		Results: append([]json.RawMessage{}, items[start:end]...),
		HasMore: end < len(items),
	}

	if list.HasMore {
		next := strconv.Itoa(end)
		list.NextCursor = &next
	}

	return list, nil
}

// matches supports the checkbox and rich_text equality filters and "and"
// compounds of them. Rows that do not decode always match.
func matches(raw json.RawMessage, filter notion.Filter) bool {
	if len(filter) == 0 {
		return true
	}

	item := notion.ParsePage(raw)
	if !item.Usable {
		return true
	}

	return evaluate(item.Value, filter)
}

func evaluate(page notion.Page, filter map[string]any) bool {
	if all, ok := filter["and"].([]any); ok {
		for _, sub := range all {
			if m, ok := sub.(map[string]any); ok && !evaluate(page, m) {
				return false
			}
		}

		return true
	}

	if all, ok := filter["and"].([]notion.Filter); ok {
		for _, sub := range all {
			if !evaluate(page, sub) {
				return false
			}
		}

		return true
	}

	name, _ := filter["property"].(string)

	if cond, ok := filter["checkbox"].(map[string]any); ok {
		want, _ := cond["equals"].(bool)
		return notion.Checkbox(page, name) == want
	}

	if cond, ok := filter["rich_text"].(map[string]any); ok {
		want, _ := cond["equals"].(string)
		return notion.RichTextValue(page, name) == want
	}

	return true
}

func notFound(id string) error {
	return &notion.APIError{
		Status:  404,
		Code:    "object_not_found",
		Message: fmt.Sprintf("Could not find database with ID: %s.", id),
	}
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("notiontest: marshal fixture: %v", err))
	}

	return raw
}
