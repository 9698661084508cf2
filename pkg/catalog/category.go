package catalog

import (
	"strconv"
	"strings"
)

// Category is a named classification that entries reference by id.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (c Category) String() string {
	return c.Name
}

// Directory indexes a loaded category set by id. A nil Directory behaves as an
// empty one.
type Directory struct {
	ordered []Category
	byID    map[int]Category
}

// NewDirectory indexes categories. When ids repeat, the first occurrence wins.
func NewDirectory(categories []Category) *Directory {
	d := &Directory{
		ordered: categories,
		byID:    make(map[int]Category, len(categories)),
	}
	for _, c := range categories {
		if _, ok := d.byID[c.ID]; ok {
			continue
		}
		d.byID[c.ID] = c
	}
	return d
}

// LookupByID returns the category with the given id. The boolean is false
// when nothing matches.
func (d *Directory) LookupByID(id int) (Category, bool) {
	if d == nil {
		return Category{}, false
	}
	c, ok := d.byID[id]
	return c, ok
}

// LookupByName returns the first category whose name equals name exactly.
func (d *Directory) LookupByName(name string) (Category, bool) {
	if d == nil {
		return Category{}, false
	}
	for _, c := range d.ordered {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// LookupByNameFold is LookupByName ignoring case and surrounding space.
func (d *Directory) LookupByNameFold(name string) (Category, bool) {
	if d == nil {
		return Category{}, false
	}
	name = strings.TrimSpace(name)
	for _, c := range d.ordered {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// Resolve accepts either a numeric id or a name (case-insensitive).
func (d *Directory) Resolve(nameOrID string) (Category, bool) {
	if id, err := strconv.Atoi(strings.TrimSpace(nameOrID)); err == nil {
		return d.LookupByID(id)
	}
	return d.LookupByNameFold(nameOrID)
}

// All returns the categories in load order.
func (d *Directory) All() []Category {
	if d == nil {
		return nil
	}
	return d.ordered
}

// Len is the number of categories loaded, duplicates included.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ordered)
}

// CategoriesOf resolves the entry's category ids in order. Ids that do not
// resolve are skipped.
func (d *Directory) CategoriesOf(e Entry) []Category {
	out := make([]Category, 0, len(e.CategoryIDs))
	for _, id := range e.CategoryIDs {
		if c, ok := d.LookupByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// CategoryNames is CategoriesOf reduced to names.
func (d *Directory) CategoryNames(e Entry) []string {
	cats := d.CategoriesOf(e)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}
