package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/pokedex/pkg/store"
)

func TestNewLoggerLevel(t *testing.T) {
	logger, closer, err := newLogger(&store.Settings{LogLevel: "debug"}, false)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	if closer != nil {
		t.Fatalf("expected no closer without a log file")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatalf("expected debug to be enabled")
	}
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	if _, _, err := newLogger(&store.Settings{LogLevel: "loud"}, false); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.log")
	logger, closer, err := newLogger(&store.Settings{LogLevel: "info", LogFile: path}, true)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info("hello", "who", "pikachu")
	if err := closer.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log failed: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("expected the log file to be written")
	}
}
