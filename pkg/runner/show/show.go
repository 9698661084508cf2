package show

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
)

// ErrNotFound is returned when no entry carries the requested name.
var ErrNotFound = errors.New("entry not found")

// Detail is the JSON shape of a shown entry.
type Detail struct {
	catalog.Entry
	Types []string `json:"typeNames"`
	Level string   `json:"level"`
}

// Show prints one entry and makes it the selected entry, which persists it
// for the next session.
type Show struct {
	Name    string
	JSON    bool
	Width   int
	Out     io.Writer
	Service *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no service")
	}
	ctrl, err := s.Service.Open(ctx)
	if err != nil {
		return err
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, Width: s.Width}

	e, ok := catalog.FindByNameFold(ctrl.Entries(), s.Name)
	if !ok {
		if !s.JSON {
			pp.Suggestions(s.Name, app.Suggest(catalog.Names(ctrl.Entries()), s.Name, 3))
		}
		return fmt.Errorf("%w: %q", ErrNotFound, s.Name)
	}
	ctrl.OnEntrySelected(e)

	dir := ctrl.Directory()
	if s.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(Detail{Entry: e, Types: dir.CategoryNames(e), Level: catalog.Level(e.HP)})
	}
	pp.Detail(dir, e)
	return nil
}
