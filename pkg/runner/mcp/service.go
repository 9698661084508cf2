// Package mcp provides the Model Context Protocol server integration for pokedex.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/pokedex/pkg/app"
	"tableflip.dev/pokedex/pkg/catalog"
	"tableflip.dev/pokedex/pkg/filter"
	"tableflip.dev/pokedex/pkg/selection"
)

// Service serialises MCP requests onto a single selection controller.
type Service struct {
	mu   sync.Mutex
	ctrl *selection.Controller
}

var (
	// ErrEntryNotFound is returned when no entry carries the requested name.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrCategoryNotFound is returned when no category matches a name or id.
	ErrCategoryNotFound = errors.New("category not found")
)

// ListEntriesOptions narrows list_entries.
type ListEntriesOptions struct {
	Search   string
	Category string
	Limit    int
}

// CategoryDTO is a transport-friendly projection of a category.
type CategoryDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Types       []string `json:"types"`
	TypeIDs     []int    `json:"typeIds"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description,omitempty"`
	Attack      string   `json:"attack,omitempty"`
	Defense     string   `json:"defense,omitempty"`
	HP          int      `json:"hp"`
	Level       string   `json:"level"`
}

// SelectionDTO reports the controller state.
type SelectionDTO struct {
	Status     string       `json:"status"`
	SearchText string       `json:"searchText"`
	Category   *CategoryDTO `json:"category,omitempty"`
	Entry      *EntryDTO    `json:"entry,omitempty"`
	Visible    int          `json:"visibleEntries"`
}

// NewService wraps a controller. The controller must not be used elsewhere
// while the service is serving.
func NewService(ctrl *selection.Controller) *Service {
	return &Service{ctrl: ctrl}
}

// ListCategories returns the categories matching search, in load order.
func (s *Service) ListCategories(ctx context.Context, search string) ([]CategoryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	cats := filter.Categories(s.ctrl.Directory().All(), search)
	out := make([]CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryDTO(c))
	}
	return out, nil
}

// ListEntries filters entries without touching the interactive selection.
func (s *Service) ListEntries(ctx context.Context, opts ListEntriesOptions) ([]EntryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	dir := s.ctrl.Directory()

	var selected *catalog.Category
	if opts.Category != "" {
		c, ok := dir.Resolve(opts.Category)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, opts.Category)
		}
		selected = &c
	}

	entries := filter.Entries(s.ctrl.Entries(), opts.Search, selected)
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryDTO(dir, e))
	}
	return out, nil
}

// EntryByName looks an entry up by name, ignoring case.
func (s *Service) EntryByName(ctx context.Context, name string) (*EntryDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.findEntry(name)
	if err != nil {
		return nil, err
	}
	dto := toEntryDTO(s.ctrl.Directory(), e)
	return &dto, nil
}

// SelectEntry makes the named entry the current selection and persists it.
func (s *Service) SelectEntry(ctx context.Context, name string) (*SelectionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.findEntry(name)
	if err != nil {
		return nil, err
	}
	s.ctrl.OnEntrySelected(e)
	return s.selection(), nil
}

// SelectCategory selects a category by name or numeric id and persists it.
func (s *Service) SelectCategory(ctx context.Context, nameOrID string) (*SelectionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ready(); err != nil {
		return nil, err
	}
	if nameOrID == "" {
		return nil, errors.New("category is required")
	}
	c, ok := s.ctrl.Directory().Resolve(nameOrID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, nameOrID)
	}
	s.ctrl.OnCategorySelected(c)
	return s.selection(), nil
}

// CurrentSelection reports the selection without changing it.
func (s *Service) CurrentSelection(ctx context.Context) (*SelectionDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctrl == nil {
		return nil, errors.New("controller is not configured")
	}
	return s.selection(), nil
}

func (s *Service) ready() error {
	if s.ctrl == nil {
		return errors.New("controller is not configured")
	}
	return s.ctrl.Ready()
}

func (s *Service) findEntry(name string) (catalog.Entry, error) {
	if err := s.ready(); err != nil {
		return catalog.Entry{}, err
	}
	if name == "" {
		return catalog.Entry{}, errors.New("name is required")
	}
	entries := s.ctrl.Entries()
	if e, ok := catalog.FindByNameFold(entries, name); ok {
		return e, nil
	}
	if near := app.Suggest(catalog.Names(entries), name, 3); len(near) > 0 {
		return catalog.Entry{}, fmt.Errorf("%w: %s (did you mean %v?)", ErrEntryNotFound, name, near)
	}
	return catalog.Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

// selection must be called with mu held.
func (s *Service) selection() *SelectionDTO {
	v := s.ctrl.Snapshot()
	dto := &SelectionDTO{
		Status:     s.ctrl.Status().String(),
		SearchText: v.SearchText,
		Visible:    len(v.FilteredEntries),
	}
	if v.SelectedCategory != nil {
		c := toCategoryDTO(*v.SelectedCategory)
		dto.Category = &c
	}
	if v.SelectedEntry != nil {
		e := toEntryDTO(s.ctrl.Directory(), *v.SelectedEntry)
		dto.Entry = &e
	}
	return dto
}

func toCategoryDTO(c catalog.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

func toEntryDTO(dir *catalog.Directory, e catalog.Entry) EntryDTO {
	ids := e.CategoryIDs
	if ids == nil {
		ids = []int{}
	}
	return EntryDTO{
		ID:          e.ID,
		Name:        e.Name,
		Types:       dir.CategoryNames(e),
		TypeIDs:     ids,
		ImageURL:    e.ImageURL,
		Description: e.Description,
		Attack:      e.Attack,
		Defense:     e.Defense,
		HP:          e.HP,
		Level:       catalog.Level(e.HP),
	}
}
