package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/pokedex/pkg/source"
	"tableflip.dev/pokedex/pkg/store"
)

// Info reports where datasets are read from and what selection is persisted.
type Info struct {
	Settings    *store.Settings
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("POKEDEX_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "POKEDEX_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "POKEDEX_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Entries:   ", source.Resolve(n.Settings.Source, n.Settings.Entries))
	_, _ = fmt.Fprintln(out, "Types:     ", source.Resolve(n.Settings.Source, n.Settings.Categories))
	_, _ = fmt.Fprintln(out, "State path:", n.Settings.StatePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintln(out, "Selection:")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		v, _ := n.Persistence.Get(k)
		_, _ = fmt.Fprintf(out, "  %s = %s\n", k, v)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "nothing selected")
	}
	return nil
}
