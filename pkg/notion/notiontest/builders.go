package notiontest

import "github.com/paragon0107/notive/pkg/notion"

func text(value string) []notion.RichText {
	if value == "" {
		return nil
	}

	return []notion.RichText{{Type: "text", PlainText: value}}
}

// Row builds a full database row.
func Row(id string, props map[string]notion.Property) notion.Page {
	if props == nil {
		props = map[string]notion.Property{}
	}

	return notion.Page{Object: notion.ObjectPage, ID: id, Properties: props}
}

func Title(value string) notion.Property {
	return notion.Property{Type: notion.PropTitle, Title: text(value)}
}

func Text(value string) notion.Property {
	return notion.Property{Type: notion.PropRichText, RichText: text(value)}
}

func Checkbox(value bool) notion.Property {
	return notion.Property{Type: notion.PropCheckbox, Checkbox: &value}
}

func Date(start string) notion.Property {
	return notion.Property{Type: notion.PropDate, Date: &notion.DateValue{Start: start}}
}

func Files(urls ...string) notion.Property {
	files := make([]notion.File, 0, len(urls))
	for _, u := range urls {
		files = append(files, notion.File{Type: "external", External: &notion.FileURL{URL: u}})
	}

	return notion.Property{Type: notion.PropFiles, Files: files}
}

func Relation(ids ...string) notion.Property {
	refs := make([]notion.Reference, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, notion.Reference{ID: id})
	}

	return notion.Property{Type: notion.PropRelation, Relation: refs}
}

func People(names ...string) notion.Property {
	people := make([]notion.Person, 0, len(names))
	for i, name := range names {
		people = append(people, notion.Person{ID: "person-" + string(rune('a'+i)), Name: name})
	}

	return notion.Property{Type: notion.PropPeople, People: people}
}

func Number(value float64) notion.Property {
	return notion.Property{Type: notion.PropNumber, Number: &value}
}

func Select(name string) notion.Property {
	return notion.Property{Type: notion.PropSelect, Select: &notion.Option{Name: name}}
}

func MultiSelect(names ...string) notion.Property {
	options := make([]notion.Option, 0, len(names))
	for _, name := range names {
		options = append(options, notion.Option{ID: "opt-" + name, Name: name})
	}

	return notion.Property{Type: notion.PropMultiSelect, MultiSelect: options}
}

func URL(value string) notion.Property {
	return notion.Property{Type: notion.PropURL, URL: &value}
}

// Database builds a schema from property name to type.
func Database(id, title string, props map[string]string) notion.Database {
	schema := make(map[string]notion.PropertySchema, len(props))

	for name, kind := range props {
		schema[name] = notion.PropertySchema{ID: name, Name: name, Type: kind}
	}

	return notion.Database{
		Object:     notion.ObjectDatabase,
		ID:         id,
		Title:      text(title),
		Properties: schema,
	}
}

func ChildDatabase(id, title string) notion.Block {
	return notion.Block{
		Object:        "block",
		ID:            id,
		Type:          notion.TypeChildDatabase,
		ChildDatabase: &notion.TitleContent{Title: title},
	}
}

// TextBlock builds any text-bearing block type.
func TextBlock(kind, id, value string) notion.Block {
	block := notion.Block{Object: "block", ID: id, Type: kind}
	content := &notion.TextContent{RichText: text(value)}

	switch kind {
	case notion.TypeParagraph:
		block.Paragraph = content
	case notion.TypeHeading1:
		block.Heading1 = content
	case notion.TypeHeading2:
		block.Heading2 = content
	case notion.TypeHeading3:
		block.Heading3 = content
	case notion.TypeBulletedListItem:
		block.BulletedListItem = content
	case notion.TypeNumberedListItem:
		block.NumberedListItem = content
	case notion.TypeQuote:
		block.Quote = content
	case notion.TypeCallout:
		block.Callout = content
	case notion.TypeCode:
		content.Language = "go"
		block.Code = content
	case notion.TypeToDo:
		checked := false
		content.Checked = &checked
		block.ToDo = content
	case notion.TypeToggle:
		block.Toggle = content
	}

	return block
}

func Paragraph(id, value string) notion.Block {
	return TextBlock(notion.TypeParagraph, id, value)
}

// Nested marks a block as having children.
func Nested(block notion.Block) notion.Block {
	block.HasChildren = true

	return block
}

func Divider(id string) notion.Block {
	return notion.Block{Object: "block", ID: id, Type: notion.TypeDivider, Divider: &notion.EmptyContent{}}
}

func Image(id, url, caption string) notion.Block {
	return notion.Block{
		Object: "block",
		ID:     id,
		Type:   notion.TypeImage,
		Image: &notion.MediaContent{
			Type:     "external",
			External: &notion.FileURL{URL: url},
			Caption:  text(caption),
		},
	}
}
