package info

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/pokedex/pkg/store"
)

func TestInfoListsSelection(t *testing.T) {
	dir := t.TempDir()
	settings := &store.Settings{
		Source:     "https://example.test/api",
		Entries:    "pokemon-api.json",
		Categories: "pokemon-types-api.json",
		State:      filepath.Join(dir, "state"),
	}
	p, err := store.Load(settings)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	var buf bytes.Buffer
	i := Info{Settings: settings, Persistence: p, Out: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing selected") {
		t.Fatalf("expected empty selection, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "https://example.test/api/pokemon-api.json") {
		t.Fatalf("expected resolved entries location, got:\n%s", buf.String())
	}

	_ = p.Set("pokemon-selected", "Squirtle")
	buf.Reset()
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(buf.String(), "pokemon-selected = Squirtle") {
		t.Fatalf("expected persisted key, got:\n%s", buf.String())
	}
}
