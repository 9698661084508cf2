// Package selection holds the viewer state: the search text, the selected
// category and the selected entry. It derives the filtered lists on read,
// restores the previous selection once both datasets have loaded and writes
// new selections back to the persisted store.
package selection

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tableflip.dev/pokedex/pkg/catalog"
	"tableflip.dev/pokedex/pkg/filter"
)

// ErrNotLoaded is returned by Ready while datasets are still loading.
var ErrNotLoaded = errors.New("selection: datasets not loaded")

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for restore and persistence messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

type subscriber struct {
	id int
	fn func(View)
}

// Controller owns the selection state. It is not safe for concurrent use;
// callers confine it to one goroutine or serialise access.
type Controller struct {
	kv  KV
	log *slog.Logger

	entries        []catalog.Entry
	dir            *catalog.Directory
	haveEntries    bool
	haveCategories bool
	restored       bool
	status         Status
	err            error

	searchText string
	category   *catalog.Category
	entry      *catalog.Entry

	subs   []subscriber
	nextID int
}

// New creates a controller in the loading state. A nil kv disables
// persistence.
func New(kv KV, opts ...Option) *Controller {
	c := &Controller{
		kv:  kv,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to be called after every state change. The returned
// func removes the subscription.
func (c *Controller) Subscribe(fn func(View)) func() {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) notify() {
	if len(c.subs) == 0 {
		return
	}
	v := c.Snapshot()
	for _, s := range append([]subscriber(nil), c.subs...) {
		s.fn(v)
	}
}

// SetEntries records the loaded entry dataset.
func (c *Controller) SetEntries(entries []catalog.Entry) {
	c.entries = entries
	c.haveEntries = true
	c.log.Debug("entries loaded", "count", len(entries))
	c.maybeRestore()
	c.notify()
}

// SetCategories records the loaded category dataset.
func (c *Controller) SetCategories(categories []catalog.Category) {
	c.dir = catalog.NewDirectory(categories)
	c.haveCategories = true
	c.log.Debug("categories loaded", "count", len(categories))
	c.maybeRestore()
	c.notify()
}

// LoadFailed moves the controller to StatusFailed. The persisted selection is
// not restored afterwards. Once both datasets have arrived the controller
// stays ready and a late failure is only logged.
func (c *Controller) LoadFailed(ds Dataset, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	if c.restored {
		c.log.Warn("dataset load failed after ready, ignoring", "dataset", string(ds), "err", err)
		return
	}
	c.status = StatusFailed
	if c.err == nil {
		c.err = fmt.Errorf("load %s: %w", ds, err)
	}
	c.log.Error("dataset load failed", "dataset", string(ds), "err", err)
	c.notify()
}

func (c *Controller) maybeRestore() {
	if c.restored || c.status == StatusFailed || !c.haveEntries || !c.haveCategories {
		return
	}
	c.restored = true
	c.status = StatusReady
	c.restore()
}

// Status reports the startup state.
func (c *Controller) Status() Status {
	return c.status
}

// Err is the first dataset load error, if any.
func (c *Controller) Err() error {
	return c.err
}

// Ready returns nil once both datasets are loaded, the load error after a
// failure and ErrNotLoaded otherwise.
func (c *Controller) Ready() error {
	switch c.status {
	case StatusReady:
		return nil
	case StatusFailed:
		return c.err
	default:
		return ErrNotLoaded
	}
}

// Entries is the loaded entry dataset.
func (c *Controller) Entries() []catalog.Entry {
	return c.entries
}

// Directory is the loaded category directory. It is nil until categories
// arrive; a nil Directory behaves as empty.
func (c *Controller) Directory() *catalog.Directory {
	return c.dir
}

// SearchText is the current search text as typed.
func (c *Controller) SearchText() string {
	return c.searchText
}

// SelectedCategory returns the selected category, if any.
func (c *Controller) SelectedCategory() (catalog.Category, bool) {
	if c.category == nil {
		return catalog.Category{}, false
	}
	return *c.category, true
}

// SelectedEntry returns the selected entry, if any.
func (c *Controller) SelectedEntry() (catalog.Entry, bool) {
	if c.entry == nil {
		return catalog.Entry{}, false
	}
	return *c.entry, true
}

// FilteredCategories derives the visible categories from the current state.
func (c *Controller) FilteredCategories() []catalog.Category {
	return filter.Categories(c.dir.All(), c.searchText)
}

// FilteredEntries derives the visible entries from the current state.
func (c *Controller) FilteredEntries() []catalog.Entry {
	return filter.Entries(c.entries, c.searchText, c.category)
}

// Snapshot copies the state and derived lists into a View.
func (c *Controller) Snapshot() View {
	v := View{
		Status:             c.status,
		Err:                c.err,
		SearchText:         c.searchText,
		FilteredCategories: c.FilteredCategories(),
		FilteredEntries:    c.FilteredEntries(),
	}
	if cat, ok := c.SelectedCategory(); ok {
		v.SelectedCategory = &cat
	}
	if e, ok := c.SelectedEntry(); ok {
		v.SelectedEntry = &e
	}
	return v
}
