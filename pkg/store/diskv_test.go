package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) StatePath() string {
	return t.path
}

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, ok := p.Get("pokemon-selected"); ok {
		t.Fatalf("expected empty store")
	}
	if err := p.Set("pokemon-selected", "Squirtle"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := p.Get("pokemon-selected")
	if !ok || got != "Squirtle" {
		t.Fatalf("expected Squirtle, got %q (%v)", got, ok)
	}

	// A fresh handle reads what the previous session wrote.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	if got, ok := p2.Get("pokemon-selected"); !ok || got != "Squirtle" {
		t.Fatalf("expected value to survive reload, got %q (%v)", got, ok)
	}
	if _, err := os.Stat(filepath.Join(base, "pokemon-selected")); err != nil {
		t.Fatalf("expected key file on disk: %v", err)
	}
}

func TestPersistenceOverwrite(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, v := range []string{"Fire", "Water"} {
		if err := p.Set("tipo-selected", v); err != nil {
			t.Fatalf("set %s: %v", v, err)
		}
	}
	if got, _ := p.Get("tipo-selected"); got != "Water" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestPersistenceClearAndKeys(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	_ = p.Set("tipo-selected", "Fire")
	_ = p.Set("pokemon-selected", "Charmander")

	keys := p.Keys(context.Background())
	if len(keys) != 2 || keys[0] != "pokemon-selected" || keys[1] != "tipo-selected" {
		t.Fatalf("unexpected keys %v", keys)
	}

	if err := p.Clear("tipo-selected"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := p.Clear("tipo-selected"); err != nil {
		t.Fatalf("clear absent key: %v", err)
	}
	if _, ok := p.Get("tipo-selected"); ok {
		t.Fatalf("expected key cleared")
	}
}

func TestLoadRequiresStatePath(t *testing.T) {
	if _, err := Load(testConfig{path: "  "}); err == nil {
		t.Fatalf("expected error for empty state path")
	}
}

func TestPersistenceRejectsEmptyKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Set("", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
