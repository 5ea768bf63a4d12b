package markdown

import (
	"bytes"
	"fmt"

	"github.com/paragon0107/notive/pkg/notion"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts Markdown to HTML. Raw HTML in the source is omitted.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAttribute(),
			),
		),
	}
}

func (r *Renderer) HTML(source string) (string, error) {
	var out bytes.Buffer

	if err := r.md.Convert([]byte(source), &out); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}

	return out.String(), nil
}

// Render writes a hydrated block tree straight to HTML.
func (r *Renderer) Render(nodes []notion.Block) (string, error) {
	return r.HTML(ToMarkdown(nodes))
}
