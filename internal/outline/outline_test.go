package outline

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	html := `<h2>A</h2><p>x</p><h3>B</h3><h1></h1><h2>  </h2>`

	entries := Extract(html)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	if entries[0].ID != "heading-0" || entries[0].Text != "A" || entries[0].Level != 2 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].ID != "heading-1" || entries[1].Text != "B" || entries[1].Level != 3 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestExtractStripsNestedMarkup(t *testing.T) {
	t.Parallel()

	entries := Extract(`<h1>Why <strong>Go</strong> <em>wins</em></h1>`)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Why Go wins" {
		t.Fatalf("markup not stripped: %q", entries[0].Text)
	}
	if entries[0].Level != 1 {
		t.Fatalf("unexpected level: %d", entries[0].Level)
	}
}

func TestExtractDocumentOrder(t *testing.T) {
	t.Parallel()

	html := `<h3>deep</h3><h1>top</h1><h2>mid</h2>`
	entries := Extract(html)

	want := []string{"deep", "top", "mid"}
	for i, entry := range entries {
		if entry.Text != want[i] {
			t.Fatalf("position %d: want %q, got %q", i, want[i], entry.Text)
		}
		if wantID := "heading-" + string(rune('0'+i)); entry.ID != wantID {
			t.Fatalf("position %d: want id %q, got %q", i, wantID, entry.ID)
		}
	}
}

func TestExtractEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "<p>no headings</p>"} {
		if entries := Extract(input); len(entries) != 0 {
			t.Fatalf("input %q: expected empty outline, got %+v", input, entries)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	html := `<h2>One</h2><h3>Two</h3><h2>Three</h2>`
	first := Extract(html)
	second := Extract(html)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not idempotent: %+v vs %+v", first, second)
	}
}

func TestExtractIgnoresDeeperHeadings(t *testing.T) {
	t.Parallel()

	entries := Extract(`<h4>skip</h4><h2>keep</h2><h5>skip</h5>`)
	if len(entries) != 1 || entries[0].Text != "keep" {
		t.Fatalf("expected only h2, got %+v", entries)
	}
}
