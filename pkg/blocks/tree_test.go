package blocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/notion/notiontest"
)

type slowChildren struct {
	*notiontest.Fake
	slow  string
	delay time.Duration
}

func (s slowChildren) ListBlockChildren(ctx context.Context, blockID, cursor string, pageSize int) (notion.List, error) {
	if blockID == s.slow {
		time.Sleep(s.delay)
	}

	return s.Fake.ListBlockChildren(ctx, blockID, cursor, pageSize)
}

func TestHydrateKeepsInputOrder(t *testing.T) {
	fake := notiontest.New()
	fake.AddChildren("b1", notiontest.Paragraph("b1-c", "one"))
	fake.AddChildren("b2", notiontest.Paragraph("b2-c", "two"))
	fake.AddChildren("b3", notiontest.Paragraph("b3-c", "three"))

	api := slowChildren{Fake: fake, slow: "b2", delay: 50 * time.Millisecond}

	nodes := []notion.Block{
		notiontest.Nested(notiontest.Paragraph("b1", "1")),
		notiontest.Nested(notiontest.Paragraph("b2", "2")),
		notiontest.Nested(notiontest.Paragraph("b3", "3")),
	}

	tree, err := Hydrate(context.Background(), api, nodes)

	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	for i, want := range []string{"b1", "b2", "b3"} {
		if tree[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, tree[i].ID)
		}

		if len(tree[i].Children) != 1 || tree[i].Children[0].ID != want+"-c" {
			t.Fatalf("children of %s not attached: %+v", want, tree[i].Children)
		}
	}

	if nodes[0].Children != nil {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestHydrateRecursesAndLeavesLeavesAlone(t *testing.T) {
	fake := notiontest.New()
	fake.AddChildren("page",
		notiontest.Nested(notiontest.TextBlock(notion.TypeToggle, "toggle", "more")),
		notiontest.Paragraph("leaf", "plain"),
	)
	fake.AddChildren("toggle", notiontest.Nested(notiontest.TextBlock(notion.TypeBulletedListItem, "item", "a")))
	fake.AddChildren("item", notiontest.TextBlock(notion.TypeBulletedListItem, "nested", "b"))

	tree, err := FetchTree(context.Background(), fake, "page")

	if err != nil {
		t.Fatalf("fetch tree: %v", err)
	}

	if len(tree) != 2 {
		t.Fatalf("expected 2 top level blocks, got %d", len(tree))
	}

	if tree[1].Children != nil {
		t.Fatalf("leaf must not receive children")
	}

	nested := tree[0].Children[0].Children
	if len(nested) != 1 || nested[0].ID != "nested" {
		t.Fatalf("expected nested list item, got %+v", nested)
	}

	if n := fake.Calls(notiontest.OpChildren); n != 3 {
		t.Fatalf("expected one listing per parent, got %d", n)
	}
}

func TestHydratePropagatesErrors(t *testing.T) {
	fake := notiontest.New()
	fake.Err = errors.New("upstream down")

	_, err := Hydrate(context.Background(), fake, []notion.Block{notiontest.Nested(notiontest.Paragraph("b1", "x"))})

	if err == nil || !errors.Is(err, fake.Err) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

func TestHydrateEmpty(t *testing.T) {
	tree, err := Hydrate(context.Background(), notiontest.New(), nil)

	if err != nil || len(tree) != 0 {
		t.Fatalf("expected empty tree, got %v %v", tree, err)
	}
}
