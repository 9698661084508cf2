package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/app"
	"tableflip.dev/pokedex/pkg/catalog"
	"tableflip.dev/pokedex/pkg/printers"
	"tableflip.dev/pokedex/pkg/selection"
)

// Kind selects which dataset to list.
type Kind string

const (
	KindCategories Kind = "categories"
	KindEntries    Kind = "entries"
)

// List prints the filtered categories or entries. Without Search, Category
// or All the selection restored from the last session applies, as it does in
// the UI.
type List struct {
	Kind     Kind
	Search   string
	Category string
	All      bool
	ShowID   bool
	JSON     bool
	Out      io.Writer
	Service  *app.Service
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errors.New("can not list, no service")
	}
	ctrl, err := l.Service.Open(ctx)
	if err != nil {
		return err
	}
	if err := Apply(ctrl, l.Search, l.Category, l.All); err != nil {
		return err
	}

	out := l.Out
	if out == nil {
		out = color.Output
	}

	switch l.Kind {
	case KindCategories:
		cats := ctrl.FilteredCategories()
		if l.JSON {
			if cats == nil {
				cats = []catalog.Category{}
			}
			return writeJSON(out, cats)
		}
		pp := printers.PrettyPrint{ShowID: l.ShowID, Out: out}
		pp.TitleWithCount(title("Types", ctrl), len(cats), "type", "types")
		pp.Categories(cats...)
	case KindEntries, "":
		entries := ctrl.FilteredEntries()
		if l.JSON {
			if entries == nil {
				entries = []catalog.Entry{}
			}
			return writeJSON(out, entries)
		}
		pp := printers.PrettyPrint{ShowID: l.ShowID, Out: out}
		pp.TitleWithCount(title("Pokémon", ctrl), len(entries), "entry", "entries")
		pp.Entries(ctrl.Directory(), entries...)
	default:
		return fmt.Errorf("unknown list kind %q", l.Kind)
	}
	return nil
}

// Apply feeds command line filters into the controller the way the UI would:
// a search (or All) replaces the text and clears the category, then a
// category is selected by id or name.
func Apply(ctrl *selection.Controller, search, category string, all bool) error {
	if all || search != "" {
		ctrl.OnSearchTextChanged(search)
	}
	if category != "" {
		cat, ok := ctrl.Directory().Resolve(category)
		if !ok {
			return fmt.Errorf("unknown type %q", category)
		}
		ctrl.OnCategorySelected(cat)
	}
	return nil
}

func title(base string, ctrl *selection.Controller) string {
	if cat, ok := ctrl.SelectedCategory(); ok {
		return fmt.Sprintf("%s of type %s", base, cat.Name)
	}
	if s := ctrl.SearchText(); s != "" {
		return fmt.Sprintf("%s matching %q", base, s)
	}
	return base
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
