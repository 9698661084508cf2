package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tableflip.dev/pokedex/pkg/app"
	"tableflip.dev/pokedex/pkg/source"
	"tableflip.dev/pokedex/pkg/store"
)

// session is what every verb needs: settings, a logger and the app service.
type session struct {
	Settings *store.Settings
	Service  *app.Service
	Logger   *slog.Logger

	closers []io.Closer
}

func (s *session) Close() {
	for _, c := range s.closers {
		_ = c.Close()
	}
}

// openSession loads the config, sets up logging and opens the persisted
// selection store. Interactive sessions only log when log-file is set, so the
// terminal UI is not drawn over.
func openSession(interactive bool) (*session, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	s := &session{Settings: settings}

	logger, closer, err := newLogger(settings, interactive)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	s.Logger = logger
	slog.SetDefault(logger)

	p, err := store.Load(settings)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Service = &app.Service{
		Source: &source.Source{
			Base:       settings.Source,
			Entries:    settings.Entries,
			Categories: settings.Categories,
			Logger:     logger,
		},
		Persistence: p,
		Logger:      logger,
	}
	return s, nil
}

func newLogger(settings *store.Settings, interactive bool) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	name := strings.TrimSpace(settings.LogLevel)
	if name == "" {
		name = "warn"
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return nil, nil, fmt.Errorf("invalid %s %q: %w", store.KeyLogLevel, settings.LogLevel, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	switch {
	case settings.LogFile != "":
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}
