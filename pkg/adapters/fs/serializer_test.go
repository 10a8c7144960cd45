package fs

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/tagnote/pkg/core"
)

func TestDecodeNote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		title string
		text  string
		tags  int
	}{
		{"no frontmatter", "hello\n", "", "hello\n", 0},
		{"full", "---\ntitle: Taxes\ntags:\n  - id: t2\n    label: work\n---\n# Due\n", "Taxes", "# Due\n", 1},
		{"crlf", "---\r\ntitle: Win\r\n---\r\nbody", "Win", "body", 0},
		{"empty frontmatter", "---\n---\nbody", "", "body", 0},
		{"no body", "---\ntitle: Only\n---", "Only", "", 0},
		{"rule in body", "---\ntitle: R\n---\nabove\n---\nbelow", "R", "above\n---\nbelow", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := decodeNote("id", []byte(tc.input))
			if err != nil {
				t.Fatalf("decodeNote failed: %v", err)
			}
			if n.ID != "id" || n.Title != tc.title || n.Text != tc.text || len(n.Tags) != tc.tags {
				t.Errorf("unexpected note %+v", n)
			}
		})
	}
}

func TestDecodeNote_Unterminated(t *testing.T) {
	_, err := decodeNote("id", []byte("---\ntitle: x\nbody"))
	if !errors.Is(err, errNoClosingFence) {
		t.Errorf("expected errNoClosingFence, got %v", err)
	}
}

func TestEncodeNote(t *testing.T) {
	n := core.Note{
		ID:              "x",
		Title:           "Groceries",
		Text:            "- milk",
		Tags:            []core.Tag{{ID: "t1", Label: "home"}},
		BackgroundColor: "#FEF9ED",
	}
	data, err := encodeNote(n)
	if err != nil {
		t.Fatalf("encodeNote failed: %v", err)
	}
	s := string(data)
	for _, want := range []string{"---\n", "title: Groceries", "id: t1", "background_color:", "#FEF9ED", "---\n- milk"} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded note missing %q:\n%s", want, s)
		}
	}

	back, err := decodeNote("x", data)
	if err != nil {
		t.Fatalf("decodeNote failed: %v", err)
	}
	if back.Title != n.Title || back.Text != n.Text || back.BackgroundColor != n.BackgroundColor {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestTags(t *testing.T) {
	data, err := encodeTags(nil)
	if err != nil {
		t.Fatalf("encodeTags failed: %v", err)
	}
	tags, err := decodeTags(data)
	if err != nil {
		t.Fatalf("decodeTags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}

	if _, err := decodeTags([]byte("tags: [")); err == nil {
		t.Error("expected error for malformed registry")
	}
}
