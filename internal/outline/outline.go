// Package outline extracts the heading structure of article HTML.
package outline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"InkSight/internal/domain"
)

// Extract returns the h1-h3 headings of the document in document order.
// Nested markup inside a heading is stripped; headings that are empty after
// trimming are skipped, and identifiers number only the emitted entries.
// Empty or unparsable input yields an empty outline, never an error. The
// result is always non-nil so persistence patches can clear stale entries.
func Extract(html string) []domain.OutlineEntry {
	entries := []domain.OutlineEntry{}
	if strings.TrimSpace(html) == "" {
		return entries
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return entries
	}
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		entries = append(entries, domain.OutlineEntry{
			ID:    fmt.Sprintf("heading-%d", len(entries)),
			Text:  text,
			Level: headingLevel(sel),
		})
	})

	return entries
}

func headingLevel(sel *goquery.Selection) int {
	if len(sel.Nodes) == 0 {
		return 1
	}

	switch sel.Nodes[0].Data {
	case "h2":
		return 2
	case "h3":
		return 3
	default:
		return 1
	}
}
