package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello-world"},
		{"  Go   Is  Fun  ", "go-is-fun"},
		{"already-slugified", "already-slugified"},
		{"a - b", "a-b"},
		{"a-!-b", "a-b"},
		{"Ｆｕｌｌ Ｗｉｄｔｈ", "full-width"},
		{"한글 제목", "한글-제목"},
		{"!!!", ""},
		{"Tabs\tand\nlines", "tabs-and-lines"},
		{"Numbers 123 and 4.5", "numbers-123-and-45"},
	}

	for _, tc := range cases {
		if got := Make(tc.input); got != tc.expected {
			t.Fatalf("Make(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestMakeIsDeterministicAndIdempotent(t *testing.T) {
	first := Make("Hello, World!")
	second := Make("Hello, World!")

	if first != second {
		t.Fatalf("expected deterministic output, got %q and %q", first, second)
	}

	if again := Make(first); again != first {
		t.Fatalf("expected idempotent output, got %q from %q", again, first)
	}
}

func TestIDSuffix(t *testing.T) {
	if got := IDSuffix("1c2d3e4f-aaaa-bbbb-cccc-0123456789AB"); got != "456789ab" {
		t.Fatalf("unexpected suffix %q", got)
	}

	if got := IDSuffix("abc"); got != "abc" {
		t.Fatalf("short ids are returned whole, got %q", got)
	}
}

func TestFromIDAndWithIDSuffix(t *testing.T) {
	id := "1c2d3e4f-aaaa-bbbb-cccc-0123456789ab"

	if got := FromID("post", id); got != "post-456789ab" {
		t.Fatalf("unexpected fallback slug %q", got)
	}

	if got := WithIDSuffix("Hello World", "post", id); got != "hello-world-456789ab" {
		t.Fatalf("unexpected derived slug %q", got)
	}

	if got := WithIDSuffix("???", "post", id); got != "post-456789ab" {
		t.Fatalf("expected fallback for empty title slug, got %q", got)
	}

	if !HasIDSuffix("hello-world-456789ab", id) {
		t.Fatalf("expected suffix match")
	}

	if HasIDSuffix("hello-world", id) {
		t.Fatalf("unexpected suffix match")
	}
}
