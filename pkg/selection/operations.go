package selection

import (
	"tableflip.dev/pokedex/pkg/catalog"
)

// OnSearchTextChanged replaces the search text. It always clears the selected
// category: typing and category selection reset each other, although
// selecting a category leaves the text alone.
func (c *Controller) OnSearchTextChanged(text string) {
	c.searchText = text
	c.setCategory(nil)
	c.notify()
}

// OnCategorySelected selects the category with the same id in the loaded
// directory. A category that no longer resolves clears the selection.
func (c *Controller) OnCategorySelected(category catalog.Category) {
	if resolved, ok := c.dir.LookupByID(category.ID); ok {
		c.setCategory(&resolved)
	} else {
		c.log.Debug("selected category not in directory", "id", category.ID, "name", category.Name)
		c.setCategory(nil)
	}
	c.notify()
}

// OnEntrySelected selects entry as given.
func (c *Controller) OnEntrySelected(entry catalog.Entry) {
	c.setEntry(&entry)
	c.notify()
}

// RestoreFromPersistedStore reloads the selection saved by a previous
// session. It runs on its own once both datasets have loaded.
//
// The entry is matched by exact name. When it resolves, the category becomes
// the entry's first category looked up by id; otherwise the stored category
// name is matched exactly. Anything unresolved becomes none.
func (c *Controller) RestoreFromPersistedStore() {
	c.restore()
	c.notify()
}

func (c *Controller) restore() {
	entryName, _ := c.get(KeyEntry)
	categoryName, _ := c.get(KeyCategory)

	var entry *catalog.Entry
	if e, ok := catalog.FindByName(c.entries, entryName); ok && entryName != "" {
		entry = &e
	}

	var category *catalog.Category
	if entry != nil {
		if id, ok := entry.FirstCategoryID(); ok {
			if cat, ok := c.dir.LookupByID(id); ok {
				category = &cat
			}
		}
	} else if categoryName != "" {
		if cat, ok := c.dir.LookupByName(categoryName); ok {
			category = &cat
		}
	}

	c.log.Info("restored selection",
		"entry", entryName, "entryFound", entry != nil,
		"category", categoryName, "categoryFound", category != nil)

	c.setEntry(entry)
	c.setCategory(category)
}

// setEntry assigns the entry and persists its name when the selection moves
// to a different present value.
func (c *Controller) setEntry(e *catalog.Entry) {
	changed := e != nil && (c.entry == nil || c.entry.ID != e.ID || c.entry.Name != e.Name)
	c.entry = e
	if changed {
		c.set(KeyEntry, e.Name)
	}
}

// setCategory is setEntry for the category.
func (c *Controller) setCategory(cat *catalog.Category) {
	changed := cat != nil && (c.category == nil || *c.category != *cat)
	c.category = cat
	if changed {
		c.set(KeyCategory, cat.Name)
	}
}

func (c *Controller) get(key string) (string, bool) {
	if c.kv == nil {
		return "", false
	}
	return c.kv.Get(key)
}

func (c *Controller) set(key, value string) {
	if c.kv == nil {
		return
	}
	if err := c.kv.Set(key, value); err != nil {
		c.log.Warn("persist selection", "key", key, "value", value, "err", err)
	}
}
