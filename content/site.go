package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type DefaultContact struct {
	Type  string `yaml:"type"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Site holds the static fallbacks merged into the Home configuration.
type Site struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	ProfileRole string           `yaml:"profile_role"`
	Contacts    []DefaultContact `yaml:"contacts"`
}

func DefaultSite() Site {
	return Site{
		Name:        "Notive",
		Description: "Notion based blog",
		ProfileRole: "Creator",
		Contacts: []DefaultContact{
			{Type: "GitHub", Label: "GitHub"},
			{Type: "Email", Label: "Email"},
			{Type: "LinkedIn", Label: "LinkedIn"},
		},
	}
}

// LoadSite reads a YAML site file over the defaults. Fields left empty in the
// file keep their default value.
func LoadSite(path string, base Site) (Site, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("content: read site file: %w", err)
	}

	var file Site
	if err := yaml.Unmarshal(data, &file); err != nil {
		return base, fmt.Errorf("content: parse site file %s: %w", path, err)
	}

	if file.Name != "" {
		base.Name = file.Name
	}

	if file.Description != "" {
		base.Description = file.Description
	}

	if file.ProfileRole != "" {
		base.ProfileRole = file.ProfileRole
	}

	if len(file.Contacts) > 0 {
		base.Contacts = file.Contacts
	}

	return base, nil
}

func contactType(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// DefaultContacts turns the configured contacts into entities ordered by position.
func (s Site) DefaultContacts() []Contact {
	contacts := make([]Contact, 0, len(s.Contacts))

	for i, c := range s.Contacts {
		order := float64(i)
		contacts = append(contacts, Contact{
			ID:    "default-" + contactType(c.Type),
			Type:  c.Type,
			Label: c.Label,
			Value: c.Value,
			Order: &order,
		})
	}

	return contacts
}

// FallbackHome is used when the Home collection has no rows.
func (s Site) FallbackHome() HomeConfig {
	return HomeConfig{
		BlogName:                  s.Name,
		AboutMe:                   s.Description,
		ProfileName:               s.Name,
		Categories:                []Category{},
		Projects:                  []Project{},
		Contacts:                  s.DefaultContacts(),
		UseNotionProfileAsDefault: true,
	}
}

// NormalizeHome fills missing default contacts by type, orders contacts and
// guarantees a blog name and about text.
func (s Site) NormalizeHome(config HomeConfig) HomeConfig {
	seen := make(map[string]bool, len(config.Contacts))
	contacts := make([]Contact, 0, len(config.Contacts)+len(s.Contacts))

	for _, c := range config.Contacts {
		key := contactType(c.Type)
		if seen[key] {
			continue
		}

		seen[key] = true
		contacts = append(contacts, c)
	}

	for _, c := range s.DefaultContacts() {
		if !seen[contactType(c.Type)] {
			contacts = append(contacts, c)
		}
	}

	config.Contacts = SortByOrder(contacts)

	if config.BlogName == "" {
		config.BlogName = s.Name
	}

	if config.AboutMe == "" {
		config.AboutMe = s.Description
	}

	if config.AboutMe == "" {
		config.AboutMe = s.ProfileRole
	}

	return config
}

// Profile derives the sidebar profile from the Home configuration.
func (s Site) Profile(home HomeConfig) Profile {
	name := home.ProfileName
	if name == "" {
		name = home.BlogName
	}

	return Profile{
		Name:     name,
		ImageURL: home.ProfileImageURL,
		Role:     s.ProfileRole,
		BlogName: home.BlogName,
	}
}
