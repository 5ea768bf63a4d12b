package markdown

import (
	"strings"

	"github.com/paragon0107/notive/pkg/blocks"
	"github.com/paragon0107/notive/pkg/notion"
)

const escapable = "\\`*_{}[]<>#|~"

// ToMarkdown writes a hydrated block tree as GFM Markdown. Headings carry
// {#id} attributes matching blocks.HeadingID.
func ToMarkdown(nodes []notion.Block) string {
	var b strings.Builder

	writeBlocks(&b, nodes, "")

	out := strings.TrimSpace(b.String())
	if out == "" {
		return ""
	}

	return out + "\n"
}

func writeBlocks(b *strings.Builder, nodes []notion.Block, indent string) {
	for i, node := range nodes {
		writeBlock(b, node, indent)

		if isListItem(node) && (i+1 == len(nodes) || !isListItem(nodes[i+1])) {
			b.WriteString("\n")
		}
	}
}

func isListItem(node notion.Block) bool {
	switch node.Type {
	case notion.TypeBulletedListItem, notion.TypeNumberedListItem, notion.TypeToDo:
		return true
	default:
		return false
	}
}

func writeBlock(b *strings.Builder, node notion.Block, indent string) {
	switch node.Type {
	case notion.TypeParagraph, notion.TypeToggle:
		if text := richText(node, indent); text != "" {
			b.WriteString(indent + text + "\n\n")
		}

		writeBlocks(b, node.Children, indent)
	case notion.TypeHeading1, notion.TypeHeading2, notion.TypeHeading3:
		writeHeading(b, node, indent)
	case notion.TypeBulletedListItem:
		writeListItem(b, node, indent, "- ")
	case notion.TypeNumberedListItem:
		writeListItem(b, node, indent, "1. ")
	case notion.TypeToDo:
		marker := "- [ ] "
		if content := node.Text(); content != nil && content.Checked != nil && *content.Checked {
			marker = "- [x] "
		}

		writeListItem(b, node, indent, marker)
	case notion.TypeQuote, notion.TypeCallout:
		writeQuote(b, node, indent)
	case notion.TypeCode:
		writeCode(b, node, indent)
	case notion.TypeTable:
		writeTable(b, node, indent)
	case notion.TypeImage:
		if node.Image != nil && node.Image.Location() != "" {
			alt := escape(notion.PlainText(node.Image.Caption))
			b.WriteString(indent + "![" + alt + "](" + destination(node.Image.Location()) + ")\n\n")
		}
	case notion.TypeVideo:
		if node.Video != nil && node.Video.Location() != "" {
			writeLink(b, indent, node.Video.Location(), node.Video.Caption)
		}
	case notion.TypeEmbed:
		if node.Embed != nil && node.Embed.URL != "" {
			writeLink(b, indent, node.Embed.URL, node.Embed.Caption)
		}
	case notion.TypeBookmark:
		if node.Bookmark != nil && node.Bookmark.URL != "" {
			writeLink(b, indent, node.Bookmark.URL, node.Bookmark.Caption)
		}
	case notion.TypeEquation:
		if node.Equation != nil {
			writeFence(b, indent, "math", node.Equation.Expression)
		}
	case notion.TypeDivider:
		b.WriteString(indent + "---\n\n")
	case notion.TypeChildPage, notion.TypeChildDatabase:
	default:
		writeBlocks(b, node.Children, indent)
	}
}

func writeHeading(b *strings.Builder, node notion.Block, indent string) {
	level := blocks.HeadingLevel(node)

	var plain string
	if content := node.Text(); content != nil {
		plain = notion.PlainText(content.RichText)
	}

	b.WriteString(indent + strings.Repeat("#", level) + " " + richText(node, indent))

	if id := blocks.HeadingID(plain, node.ID); id != "" {
		b.WriteString(" {#" + id + "}")
	}

	b.WriteString("\n\n")

	writeBlocks(b, node.Children, indent)
}

func writeListItem(b *strings.Builder, node notion.Block, indent, marker string) {
	nested := indent + strings.Repeat(" ", len(marker))

	b.WriteString(indent + marker + richText(node, nested) + "\n")

	if len(node.Children) > 0 {
		var inner strings.Builder
		writeBlocks(&inner, node.Children, nested)
		b.WriteString(strings.TrimRight(inner.String(), "\n") + "\n")
	}
}

func writeQuote(b *strings.Builder, node notion.Block, indent string) {
	var inner strings.Builder

	text := richText(node, "")
	if content := node.Text(); node.Type == notion.TypeCallout && content != nil && content.Icon != nil && content.Icon.Emoji != "" {
		text = content.Icon.Emoji + " " + text
	}

	inner.WriteString(text + "\n\n")
	writeBlocks(&inner, node.Children, "")

	for _, line := range strings.Split(strings.TrimRight(inner.String(), "\n"), "\n") {
		if line == "" {
			b.WriteString(indent + ">\n")
			continue
		}

		b.WriteString(indent + "> " + line + "\n")
	}

	b.WriteString("\n")
}

func writeCode(b *strings.Builder, node notion.Block, indent string) {
	content := node.Text()
	if content == nil {
		return
	}

	language := content.Language
	if language == "plain text" {
		language = ""
	}

	writeFence(b, indent, strings.ReplaceAll(language, " ", "-"), notion.PlainText(content.RichText))
}

func writeFence(b *strings.Builder, indent, info, body string) {
	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}

	b.WriteString(indent + fence + info + "\n")

	for _, line := range strings.Split(body, "\n") {
		b.WriteString(indent + line + "\n")
	}

	b.WriteString(indent + fence + "\n\n")
}

func writeTable(b *strings.Builder, node notion.Block, indent string) {
	var rows [][]string

	for _, child := range node.Children {
		if child.Type != notion.TypeTableRow || child.TableRow == nil {
			continue
		}

		cells := make([]string, 0, len(child.TableRow.Cells))
		for _, cell := range child.TableRow.Cells {
			cells = append(cells, strings.ReplaceAll(inline(cell), "\n", " "))
		}

		rows = append(rows, cells)
	}

	if len(rows) == 0 {
		return
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	if node.Table != nil && node.Table.TableWidth > width {
		width = node.Table.TableWidth
	}

	header := rows[0]
	body := rows[1:]

	if node.Table != nil && !node.Table.HasColumnHeader {
		header = make([]string, width)
		body = rows
	}

	writeRow(b, indent, header, width)

	separator := make([]string, width)
	for i := range separator {
		separator[i] = "---"
	}

	writeRow(b, indent, separator, width)

	for _, row := range body {
		writeRow(b, indent, row, width)
	}

	b.WriteString("\n")
}

func writeRow(b *strings.Builder, indent string, cells []string, width int) {
	padded := make([]string, width)
	copy(padded, cells)

	b.WriteString(indent + "| " + strings.Join(padded, " | ") + " |\n")
}

func writeLink(b *strings.Builder, indent, url string, caption []notion.RichText) {
	label := escape(notion.PlainText(caption))
	if label == "" {
		label = escape(url)
	}

	b.WriteString(indent + "[" + label + "](" + destination(url) + ")\n\n")
}

func richText(node notion.Block, indent string) string {
	content := node.Text()
	if content == nil {
		return ""
	}

	return strings.ReplaceAll(inline(content.RichText), "\n", "\\\n"+indent)
}

func inline(parts []notion.RichText) string {
	var b strings.Builder

	for _, part := range parts {
		if part.PlainText == "" {
			continue
		}

		text := escape(part.PlainText)

		if a := part.Annotations; a != nil {
			if a.Code {
				text = codeSpan(part.PlainText)
			}

			if a.Bold {
				text = wrap(text, "**")
			}

			if a.Italic {
				text = wrap(text, "_")
			}

			if a.Strikethrough {
				text = wrap(text, "~~")
			}
		}

		if part.Href != nil && *part.Href != "" {
			text = "[" + text + "](" + destination(*part.Href) + ")"
		}

		b.WriteString(text)
	}

	return b.String()
}

// wrap places marker around the text while keeping outer whitespace outside,
// since emphasis cannot start or end on a space.
func wrap(text, marker string) string {
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}

	start := strings.Index(text, core)

	return text[:start] + marker + core + marker + text[start+len(core):]
}

func codeSpan(text string) string {
	ticks := "`"
	for strings.Contains(text, ticks) {
		ticks += "`"
	}

	if strings.HasPrefix(text, "`") || strings.HasSuffix(text, "`") {
		return ticks + " " + text + " " + ticks
	}

	return ticks + text + ticks
}

func escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if strings.ContainsRune(escapable, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	return b.String()
}

func destination(url string) string {
	return "<" + strings.NewReplacer("<", "%3C", ">", "%3E", " ", "%20").Replace(url) + ">"
}
