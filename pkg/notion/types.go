package notion

import (
	"encoding/json"
	"strings"
)

const (
	ObjectPage     = "page"
	ObjectList     = "list"
	ObjectDatabase = "database"
)

const (
	TypeParagraph        = "paragraph"
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeQuote            = "quote"
	TypeCallout          = "callout"
	TypeCode             = "code"
	TypeToDo             = "to_do"
	TypeToggle           = "toggle"
	TypeTable            = "table"
	TypeTableRow         = "table_row"
	TypeImage            = "image"
	TypeVideo            = "video"
	TypeEmbed            = "embed"
	TypeBookmark         = "bookmark"
	TypeEquation         = "equation"
	TypeDivider          = "divider"
	TypeChildDatabase    = "child_database"
	TypeChildPage        = "child_page"
)

// Property type names as reported by the database schema.
const (
	PropTitle       = "title"
	PropRichText    = "rich_text"
	PropCheckbox    = "checkbox"
	PropDate        = "date"
	PropFiles       = "files"
	PropRelation    = "relation"
	PropPeople      = "people"
	PropNumber      = "number"
	PropSelect      = "select"
	PropMultiSelect = "multi_select"
	PropURL         = "url"
)

type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

type RichText struct {
	Type        string       `json:"type,omitempty"`
	PlainText   string       `json:"plain_text"`
	Href        *string      `json:"href,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// PlainText concatenates the plain text of every rich text fragment.
func PlainText(parts []RichText) string {
	var b strings.Builder

	for _, part := range parts {
		b.WriteString(part.PlainText)
	}

	return b.String()
}

type Option struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type FileURL struct {
	URL string `json:"url"`
}

type File struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

// Location returns the hosted or external url of the file.
func (f File) Location() string {
	switch {
	case f.Type == "external" && f.External != nil:
		return f.External.URL
	case f.Type == "file" && f.File != nil:
		return f.File.URL
	default:
		return ""
	}
}

type Person struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Reference struct {
	ID string `json:"id"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// Property is one typed value on a row. Only the field named by Type is set.
type Property struct {
	ID          string      `json:"id,omitempty"`
	Type        string      `json:"type"`
	Title       []RichText  `json:"title,omitempty"`
	RichText    []RichText  `json:"rich_text,omitempty"`
	Checkbox    *bool       `json:"checkbox,omitempty"`
	Date        *DateValue  `json:"date,omitempty"`
	Files       []File      `json:"files,omitempty"`
	Relation    []Reference `json:"relation,omitempty"`
	People      []Person    `json:"people,omitempty"`
	Number      *float64    `json:"number,omitempty"`
	Select      *Option     `json:"select,omitempty"`
	MultiSelect []Option    `json:"multi_select,omitempty"`
	URL         *string     `json:"url,omitempty"`
}

// Page is a database row.
type Page struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

type OptionsSchema struct {
	Options []Option `json:"options"`
}

type RelationSchema struct {
	DatabaseID string `json:"database_id"`
}

type PropertySchema struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Type        string          `json:"type"`
	Select      *OptionsSchema  `json:"select,omitempty"`
	MultiSelect *OptionsSchema  `json:"multi_select,omitempty"`
	Relation    *RelationSchema `json:"relation,omitempty"`
}

// Database is a collection definition: its title and declared properties.
type Database struct {
	Object     string                    `json:"object"`
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title"`
	Properties map[string]PropertySchema `json:"properties"`
}

func (d Database) PlainTitle() string {
	return PlainText(d.Title)
}

type Icon struct {
	Type     string   `json:"type"`
	Emoji    string   `json:"emoji,omitempty"`
	External *FileURL `json:"external,omitempty"`
	File     *FileURL `json:"file,omitempty"`
}

// TextContent is shared by every text-bearing block type.
type TextContent struct {
	RichText     []RichText `json:"rich_text"`
	Color        string     `json:"color,omitempty"`
	Language     string     `json:"language,omitempty"`
	Caption      []RichText `json:"caption,omitempty"`
	Icon         *Icon      `json:"icon,omitempty"`
	Checked      *bool      `json:"checked,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

type TableContent struct {
	TableWidth      int  `json:"table_width"`
	HasColumnHeader bool `json:"has_column_header"`
	HasRowHeader    bool `json:"has_row_header"`
}

type TableRowContent struct {
	Cells [][]RichText `json:"cells"`
}

type MediaContent struct {
	Type     string     `json:"type"`
	File     *FileURL   `json:"file,omitempty"`
	External *FileURL   `json:"external,omitempty"`
	Caption  []RichText `json:"caption,omitempty"`
}

func (m MediaContent) Location() string {
	return File{Type: m.Type, File: m.File, External: m.External}.Location()
}

type LinkContent struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

type EquationContent struct {
	Expression string `json:"expression"`
}

type TitleContent struct {
	Title string `json:"title"`
}

type EmptyContent struct{}

// Block is one node of page content. Children is only populated by hydration.
type Block struct {
	Object           string           `json:"object,omitempty"`
	ID               string           `json:"id"`
	Type             string           `json:"type"`
	HasChildren      bool             `json:"has_children"`
	Paragraph        *TextContent     `json:"paragraph,omitempty"`
	Heading1         *TextContent     `json:"heading_1,omitempty"`
	Heading2         *TextContent     `json:"heading_2,omitempty"`
	Heading3         *TextContent     `json:"heading_3,omitempty"`
	BulletedListItem *TextContent     `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextContent     `json:"numbered_list_item,omitempty"`
	Quote            *TextContent     `json:"quote,omitempty"`
	Callout          *TextContent     `json:"callout,omitempty"`
	Code             *TextContent     `json:"code,omitempty"`
	ToDo             *TextContent     `json:"to_do,omitempty"`
	Toggle           *TextContent     `json:"toggle,omitempty"`
	Table            *TableContent    `json:"table,omitempty"`
	TableRow         *TableRowContent `json:"table_row,omitempty"`
	Image            *MediaContent    `json:"image,omitempty"`
	Video            *MediaContent    `json:"video,omitempty"`
	Embed            *LinkContent     `json:"embed,omitempty"`
	Bookmark         *LinkContent     `json:"bookmark,omitempty"`
	Equation         *EquationContent `json:"equation,omitempty"`
	Divider          *EmptyContent    `json:"divider,omitempty"`
	ChildDatabase    *TitleContent    `json:"child_database,omitempty"`
	ChildPage        *TitleContent    `json:"child_page,omitempty"`
	Children         []Block          `json:"children,omitempty"`
}

// Text returns the text payload of text-bearing blocks and nil otherwise.
func (b Block) Text() *TextContent {
	switch b.Type {
	case TypeParagraph:
		return b.Paragraph
	case TypeHeading1:
		return b.Heading1
	case TypeHeading2:
		return b.Heading2
	case TypeHeading3:
		return b.Heading3
	case TypeBulletedListItem:
		return b.BulletedListItem
	case TypeNumberedListItem:
		return b.NumberedListItem
	case TypeQuote:
		return b.Quote
	case TypeCallout:
		return b.Callout
	case TypeCode:
		return b.Code
	case TypeToDo:
		return b.ToDo
	case TypeToggle:
		return b.Toggle
	default:
		return nil
	}
}

// List is one page of a cursor-paginated listing. Results stay raw so that
// partial objects can be told apart from full ones.
type List struct {
	Object     string            `json:"object"`
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor *string           `json:"next_cursor"`
}

type Sort struct {
	Property  string `json:"property,omitempty"`
	Direction string `json:"direction"`
}

type Filter map[string]any

func CheckboxEquals(property string, value bool) Filter {
	return Filter{
		"property": property,
		"checkbox": map[string]any{"equals": value},
	}
}

func RichTextEquals(property, value string) Filter {
	return Filter{
		"property":  property,
		"rich_text": map[string]any{"equals": value},
	}
}

type QueryRequest struct {
	Filter      Filter `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}
