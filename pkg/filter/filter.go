// Package filter derives the visible category and entry lists from the loaded
// datasets and the current search text or selected category. Every function
// here is pure and preserves the input order.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"tableflip.dev/pokedex/pkg/catalog"
)

// Normalize trims surrounding space and applies Unicode case folding.
func Normalize(text string) string {
	// Casers carry state, so one is built per call.
	return cases.Fold().String(strings.TrimSpace(text))
}

// matches reports whether name contains the already normalized needle.
func matches(name, needle string) bool {
	return strings.Contains(cases.Fold().String(name), needle)
}

// Categories returns the categories whose name contains searchText, ignoring
// case. An empty (or all-space) searchText returns categories unchanged.
func Categories(categories []catalog.Category, searchText string) []catalog.Category {
	needle := Normalize(searchText)
	if needle == "" {
		return categories
	}
	out := make([]catalog.Category, 0, len(categories))
	for _, c := range categories {
		if matches(c.Name, needle) {
			out = append(out, c)
		}
	}
	return out
}

// Entries returns the visible entries. A selected category wins over the
// search text: when selected is non-nil only membership in that category
// counts. Otherwise entries are matched by name the same way Categories
// matches categories.
func Entries(entries []catalog.Entry, searchText string, selected *catalog.Category) []catalog.Entry {
	if selected != nil {
		out := make([]catalog.Entry, 0, len(entries))
		for _, e := range entries {
			if e.HasCategory(selected.ID) {
				out = append(out, e)
			}
		}
		return out
	}

	needle := Normalize(searchText)
	if needle == "" {
		return entries
	}
	out := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e.Name, needle) {
			out = append(out, e)
		}
	}
	return out
}
