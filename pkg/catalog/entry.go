// Package catalog defines the creature and category records loaded from the
// data store, and the directory used to resolve categories by id.
package catalog

import (
	"fmt"
	"strings"
)

// Entry is a single creature record. Entries are immutable once loaded.
type Entry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CategoryIDs []int  `json:"types"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
	Attack      string `json:"attack"`
	Defense     string `json:"defense"`
	HP          int    `json:"hp"`
}

// HasCategory reports whether the entry belongs to the category id.
func (e Entry) HasCategory(id int) bool {
	for _, c := range e.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

// FirstCategoryID returns the first category id of the entry, if any.
func (e Entry) FirstCategoryID() (int, bool) {
	if len(e.CategoryIDs) == 0 {
		return 0, false
	}
	return e.CategoryIDs[0], true
}

func (e Entry) String() string {
	return fmt.Sprintf("#%03d %s", e.ID, e.Name)
}

// FindByName returns the first entry whose name equals name exactly.
func FindByName(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByNameFold is FindByName ignoring case and surrounding space. CLI input
// goes through here; persisted values use the exact FindByName.
func FindByNameFold(entries []Entry, name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
