package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("POKEDEX_CONFIG_PATH", "")

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.Entries != "pokemon-api.json" || s.Categories != "pokemon-types-api.json" {
		t.Fatalf("unexpected dataset defaults: %+v", s)
	}
	if s.Source != "." {
		t.Fatalf("unexpected source default %q", s.Source)
	}
	if s.State == "~/.pokedex" || filepath.Base(s.State) != ".pokedex" {
		t.Fatalf("expected state path expanded, got %q", s.State)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	cfg := "source: https://example.test/api\nstate: " + filepath.Join(dir, "state") + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".pokedex.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("POKEDEX_CONFIG_PATH", dir)
	t.Setenv("POKEDEX_LOG_LEVEL", "debug")

	s, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.Source != "https://example.test/api" {
		t.Fatalf("expected source from file, got %q", s.Source)
	}
	if s.StatePath() != filepath.Join(dir, "state") {
		t.Fatalf("expected state from file, got %q", s.StatePath())
	}
	if s.LogLevel != "debug" {
		t.Fatalf("expected log level from env, got %q", s.LogLevel)
	}
}
