package pick

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/app"
	"tableflip.dev/pokedex/pkg/printers"
)

// Pick selects a type by id or name, persisting it, and prints its members.
type Pick struct {
	Category string
	ShowID   bool
	Out      io.Writer
	Service  *app.Service
}

func (p *Pick) Do(ctx context.Context) error {
	if p.Service == nil {
		return errors.New("can not pick, no service")
	}
	ctrl, err := p.Service.Open(ctx)
	if err != nil {
		return err
	}
	cat, ok := ctrl.Directory().Resolve(p.Category)
	if !ok {
		return fmt.Errorf("unknown type %q", p.Category)
	}
	ctrl.OnCategorySelected(cat)

	out := p.Out
	if out == nil {
		out = color.Output
	}
	entries := ctrl.FilteredEntries()
	pp := printers.PrettyPrint{ShowID: p.ShowID, Out: out}
	pp.TitleWithCount(fmt.Sprintf("Selected type %s", cat.Name), len(entries), "entry", "entries")
	pp.Entries(ctrl.Directory(), entries...)
	return nil
}
