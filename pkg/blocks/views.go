package blocks

import (
	"math"
	"strings"

	"github.com/paragon0107/notive/pkg/notion"
	"github.com/paragon0107/notive/pkg/slug"
)

const wordsPerMinute = 200

type TocItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var headingLevels = map[string]int{
	notion.TypeHeading1: 2,
	notion.TypeHeading2: 3,
	notion.TypeHeading3: 4,
}

// HeadingLevel maps heading blocks to outline levels 2..4, or 0.
func HeadingLevel(block notion.Block) int {
	return headingLevels[block.Type]
}

// PlainText joins the text of text-bearing blocks with single spaces.
func PlainText(nodes []notion.Block) string {
	var parts []string

	Walk(nodes, func(block notion.Block) {
		if text, ok := blockText(block); ok {
			parts = append(parts, text)
		}
	})

	return strings.TrimSpace(strings.Join(parts, " "))
}

func blockText(block notion.Block) (string, bool) {
	switch block.Type {
	case notion.TypeParagraph, notion.TypeHeading1, notion.TypeHeading2, notion.TypeHeading3,
		notion.TypeBulletedListItem, notion.TypeNumberedListItem, notion.TypeQuote,
		notion.TypeCallout, notion.TypeCode:
		content := block.Text()
		if content == nil {
			return "", true
		}

		return notion.PlainText(content.RichText), true
	case notion.TypeTableRow:
		if block.TableRow == nil {
			return "", true
		}

		cells := make([]string, 0, len(block.TableRow.Cells))
		for _, cell := range block.TableRow.Cells {
			cells = append(cells, notion.PlainText(cell))
		}

		return strings.Join(cells, " "), true
	default:
		return "", false
	}
}

// HeadingID builds a stable anchor from heading text and the block id.
func HeadingID(text, blockID string) string {
	base := slug.Make(text)

	if blockID == "" {
		return base
	}

	if base == "" {
		return slug.FromID("heading", blockID)
	}

	return base + "-" + slug.IDSuffix(blockID)
}

// TableOfContents lists heading blocks in document order.
func TableOfContents(nodes []notion.Block) []TocItem {
	items := make([]TocItem, 0)

	Walk(nodes, func(block notion.Block) {
		level := HeadingLevel(block)
		if level == 0 {
			return
		}

		var text string
		if content := block.Text(); content != nil {
			text = notion.PlainText(content.RichText)
		}

		items = append(items, TocItem{
			ID:    HeadingID(text, block.ID),
			Text:  text,
			Level: level,
		})
	})

	return items
}

// ReadingMinutes estimates reading time at 200 words a minute.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))

	if words == 0 {
		return 0
	}

	return max(1, int(math.Ceil(float64(words)/wordsPerMinute)))
}
