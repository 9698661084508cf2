// Package source fetches the entry and category datasets. A dataset location
// is either an http(s) URL or a path on disk; relative locations resolve
// against a base that is itself a URL or a directory.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/pokedex/pkg/catalog"
)

// ErrStatus is wrapped by errors for non-2xx HTTP responses.
var ErrStatus = errors.New("source: unexpected http status")

// LoadError names the dataset and location that failed.
type LoadError struct {
	Dataset  string
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("source: load %s from %s: %v", e.Dataset, e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Datasets is the result of a joined Load.
type Datasets struct {
	Entries    []catalog.Entry
	Categories []catalog.Category
}

// Source describes where the two datasets live.
type Source struct {
	Base       string
	Entries    string
	Categories string

	// Client is used for http(s) locations; http.DefaultClient when nil.
	Client *http.Client
	Logger *slog.Logger
}

// EntriesLocation is the resolved entries location.
func (s *Source) EntriesLocation() string {
	return Resolve(s.Base, s.Entries)
}

// CategoriesLocation is the resolved categories location.
func (s *Source) CategoriesLocation() string {
	return Resolve(s.Base, s.Categories)
}

// LoadEntries fetches and decodes the entry dataset.
func (s *Source) LoadEntries(ctx context.Context) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	if err := s.load(ctx, "entries", s.EntriesLocation(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadCategories fetches and decodes the category dataset.
func (s *Source) LoadCategories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := s.load(ctx, "categories", s.CategoriesLocation(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Load issues both loads concurrently and returns once both have finished.
// A failure in one load does not cancel the other.
func (s *Source) Load(ctx context.Context) (*Datasets, error) {
	var (
		ds Datasets
		g  errgroup.Group
	)
	g.Go(func() error {
		entries, err := s.LoadEntries(ctx)
		ds.Entries = entries
		return err
	})
	g.Go(func() error {
		categories, err := s.LoadCategories(ctx)
		ds.Categories = categories
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (s *Source) load(ctx context.Context, dataset, location string, into any) error {
	log := s.logger().With("dataset", dataset, "location", location)
	log.Debug("loading dataset")

	data, err := s.fetch(ctx, location)
	if err == nil {
		err = json.Unmarshal(data, into)
	}
	if err != nil {
		log.Debug("dataset load failed", "err", err)
		return &LoadError{Dataset: dataset, Location: location, Err: err}
	}
	log.Debug("dataset loaded", "bytes", len(data))
	return nil
}

func (s *Source) fetch(ctx context.Context, location string) ([]byte, error) {
	if !isURL(location) {
		return os.ReadFile(strings.TrimPrefix(location, "file://"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (s *Source) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Resolve joins a dataset location onto base. Absolute URLs are returned as
// given. Under a URL base a rooted location such as "/types.json" stays
// under the base path; under a directory base it is an absolute path.
func Resolve(base, location string) string {
	location = strings.TrimSpace(location)
	if isURL(location) || strings.HasPrefix(location, "file://") {
		return location
	}
	base = strings.TrimSpace(base)
	if base == "" {
		return location
	}
	if isURL(base) {
		u, err := url.Parse(base)
		if err != nil {
			return location
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		ref, err := url.Parse(strings.TrimPrefix(location, "/"))
		if err != nil {
			return location
		}
		return u.ResolveReference(ref).String()
	}
	if filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(strings.TrimPrefix(base, "file://"), location)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
