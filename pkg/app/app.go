package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"tableflip.dev/pokedex/pkg/selection"
	"tableflip.dev/pokedex/pkg/source"
	"tableflip.dev/pokedex/pkg/store"
)

// Service provides the startup sequence shared by the UI, the CLI verbs and
// the MCP server: build a controller on the persisted store, load both
// datasets and hand them over.
type Service struct {
	Source      *source.Source
	Persistence store.Persistence
	Logger      *slog.Logger
}

var ErrNoSource = errors.New("app: no data source configured")

// NewController returns a controller in the loading state, wired to the
// persisted store.
func (s *Service) NewController() *selection.Controller {
	var kv selection.KV
	if s.Persistence != nil {
		kv = s.Persistence
	}
	return selection.New(kv, selection.WithLogger(s.logger()))
}

// Open loads both datasets and returns a ready controller. On a load failure
// the controller is returned too, in the failed state, alongside the error.
func (s *Service) Open(ctx context.Context) (*selection.Controller, error) {
	ctrl := s.NewController()
	if s.Source == nil {
		ctrl.LoadFailed(selection.DatasetEntries, ErrNoSource)
		return ctrl, ErrNoSource
	}
	ds, err := s.Source.Load(ctx)
	if err != nil {
		ctrl.LoadFailed(DatasetOf(err), err)
		return ctrl, err
	}
	ctrl.SetCategories(ds.Categories)
	ctrl.SetEntries(ds.Entries)
	return ctrl, nil
}

// Forget erases the persisted selection.
func (s *Service) Forget() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	for _, key := range []string{selection.KeyEntry, selection.KeyCategory} {
		if err := s.Persistence.Clear(key); err != nil {
			return err
		}
	}
	return nil
}

// DatasetOf names the dataset a load error belongs to, defaulting to entries.
func DatasetOf(err error) selection.Dataset {
	var le *source.LoadError
	if errors.As(err, &le) && le.Dataset == string(selection.DatasetCategories) {
		return selection.DatasetCategories
	}
	return selection.DatasetEntries
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
