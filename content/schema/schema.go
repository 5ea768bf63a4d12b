// Package schema checks collection property definitions before rows are mapped.
package schema

import (
	"slices"
	"sort"
	"strings"

	"github.com/paragon0107/notive/content"
	"github.com/paragon0107/notive/pkg/notion"
)

// Expected maps a property name to its allowed types.
type Expected map[string][]string

func one(kind string) []string {
	return []string{kind}
}

var Posts = Expected{
	"Title":     one(notion.PropTitle),
	"Slug":      one(notion.PropRichText),
	"Published": one(notion.PropCheckbox),
	"Date":      one(notion.PropDate),
	"Summary":   one(notion.PropRichText),
	"Thumbnail": one(notion.PropFiles),
	"Category":  one(notion.PropMultiSelect),
	"Series":    one(notion.PropRelation),
	"Author":    one(notion.PropPeople),
}

var Projects = Expected{
	"Name":  one(notion.PropTitle),
	"Icon":  one(notion.PropFiles),
	"Link":  one(notion.PropURL),
	"Order": one(notion.PropNumber),
}

var Contacts = Expected{
	"Name":  one(notion.PropTitle),
	"Type":  one(notion.PropSelect),
	"Label": one(notion.PropRichText),
	"Value": one(notion.PropRichText),
	"Icon":  one(notion.PropFiles),
	"Order": one(notion.PropNumber),
}

var Home = Expected{
	"Name":                      one(notion.PropTitle),
	"BlogName":                  one(notion.PropRichText),
	"AboutMe":                   one(notion.PropRichText),
	"ProfileName":               one(notion.PropRichText),
	"ProfileImage":              one(notion.PropFiles),
	"CategoryList":              one(notion.PropMultiSelect),
	"Projects":                  one(notion.PropRelation),
	"Contacts":                  one(notion.PropRelation),
	"UseNotionProfileAsDefault": one(notion.PropCheckbox),
}

// Assert reports every missing or mistyped property of database in one
// *content.SchemaMismatchError. Violations are listed by property name.
func Assert(database notion.Database, expected Expected) error {
	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}

	sort.Strings(names)

	var missing, mismatched []string

	for _, name := range names {
		allowed := expected[name]
		prop, ok := database.Properties[name]

		if !ok {
			missing = append(missing, name)
			continue
		}

		if !slices.Contains(allowed, prop.Type) {
			mismatched = append(mismatched, name+" (expected "+strings.Join(allowed, " or ")+", got "+prop.Type+")")
		}
	}

	if len(missing) == 0 && len(mismatched) == 0 {
		return nil
	}

	return &content.SchemaMismatchError{
		Collection: database.PlainTitle(),
		Missing:    missing,
		Mismatched: mismatched,
	}
}
