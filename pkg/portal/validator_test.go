package portal

import (
	"encoding/json"
	"strings"
	"testing"
)

type notionConfig struct {
	Token   string `validate:"required,min=8"`
	PageID  string `validate:"required"`
	BaseURL string `validate:"required,url"`
}

type siteConfig struct {
	Name   string       `validate:"required"`
	Notion notionConfig `validate:"required"`
}

func TestValidator_Passes(t *testing.T) {
	v := GetDefaultValidator()

	ok, err := v.Passes(&siteConfig{
		Name:   "Notive",
		Notion: notionConfig{Token: "secret_token", PageID: "root", BaseURL: "https://api.notion.com/v1"},
	})

	if err != nil || !ok {
		t.Fatalf("expected pass got %v %v", ok, err)
	}

	if len(v.GetErrors()) != 0 {
		t.Fatalf("expected errors to reset, got %v", v.GetErrors())
	}
}

func TestValidator_RecordsNamespacedErrors(t *testing.T) {
	v := GetDefaultValidator()

	invalid := &siteConfig{
		Notion: notionConfig{Token: "short", BaseURL: "notion"},
	}

	if ok, err := v.Passes(invalid); ok || err == nil {
		t.Fatalf("expected fail")
	}

	errs := v.GetErrors()
	for _, key := range []string{"siteConfig.Name", "siteConfig.Notion.Token", "siteConfig.Notion.PageID", "siteConfig.Notion.BaseURL"} {
		if _, found := errs[key]; !found {
			t.Fatalf("missing %s in %v", key, errs)
		}
	}

	if msg, _ := errs["siteConfig.Notion.Token"].(string); !strings.Contains(msg, "[min=8]") {
		t.Fatalf("expected rule in message, got %q", msg)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(v.GetErrorsAsJson()), &decoded); err != nil || len(decoded) != len(errs) {
		t.Fatalf("unexpected json %q: %v", v.GetErrorsAsJson(), err)
	}
}

func TestValidator_Rejects(t *testing.T) {
	v := GetDefaultValidator()

	reject, err := v.Rejects(notionConfig{})

	if !reject || err == nil {
		t.Fatalf("expected reject")
	}
}
