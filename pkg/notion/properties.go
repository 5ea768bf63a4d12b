package notion

// DefaultTitle is used for rows without a usable title property.
const DefaultTitle = "Untitled"

func (p Page) property(name, kind string) (Property, bool) {
	prop, ok := p.Properties[name]

	if !ok || prop.Type != kind {
		return Property{}, false
	}

	return prop, true
}

// Title reads the "Title" or "Name" title property.
func Title(p Page) string {
	for _, name := range []string{"Title", "Name"} {
		prop, ok := p.property(name, PropTitle)
		if !ok {
			continue
		}

		if text := PlainText(prop.Title); text != "" {
			return text
		}
	}

	return DefaultTitle
}

func RichTextValue(p Page, name string) string {
	prop, ok := p.property(name, PropRichText)

	if !ok {
		return ""
	}

	return PlainText(prop.RichText)
}

func Checkbox(p Page, name string) bool {
	prop, ok := p.property(name, PropCheckbox)

	return ok && prop.Checkbox != nil && *prop.Checkbox
}

// Date returns the start of a date property.
func Date(p Page, name string) string {
	prop, ok := p.property(name, PropDate)

	if !ok || prop.Date == nil {
		return ""
	}

	return prop.Date.Start
}

// FileLocation returns the url of the first file of a files property.
func FileLocation(p Page, name string) string {
	prop, ok := p.property(name, PropFiles)

	if !ok || len(prop.Files) == 0 {
		return ""
	}

	return prop.Files[0].Location()
}

func RelationIDs(p Page, name string) []string {
	prop, ok := p.property(name, PropRelation)

	if !ok {
		return nil
	}

	ids := make([]string, 0, len(prop.Relation))
	for _, ref := range prop.Relation {
		ids = append(ids, ref.ID)
	}

	return ids
}

func PeopleNames(p Page, name string) []string {
	prop, ok := p.property(name, PropPeople)

	if !ok {
		return nil
	}

	names := make([]string, 0, len(prop.People))
	for _, person := range prop.People {
		names = append(names, person.Name)
	}

	return names
}

func Number(p Page, name string) *float64 {
	prop, ok := p.property(name, PropNumber)

	if !ok || prop.Number == nil {
		return nil
	}

	value := *prop.Number

	return &value
}

func Select(p Page, name string) *Option {
	prop, ok := p.property(name, PropSelect)

	if !ok || prop.Select == nil {
		return nil
	}

	option := *prop.Select

	return &option
}

func MultiSelect(p Page, name string) []Option {
	prop, ok := p.property(name, PropMultiSelect)

	if !ok {
		return nil
	}

	return append([]Option(nil), prop.MultiSelect...)
}

func URL(p Page, name string) string {
	prop, ok := p.property(name, PropURL)

	if !ok || prop.URL == nil {
		return ""
	}

	return *prop.URL
}
