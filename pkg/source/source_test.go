package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/pokedex/pkg/catalog"
)

const (
	entriesJSON    = `[{"id":1,"name":"Charmander","types":[1],"hp":39},{"id":2,"name":"Squirtle","types":[2],"hp":44}]`
	categoriesJSON = `[{"id":1,"name":"Fire"},{"id":2,"name":"Water"}]`
)

func newServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func body(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s))
	}
}

func TestLoadOverHTTP(t *testing.T) {
	srv := newServer(t, map[string]http.HandlerFunc{
		"/api/pokemon-api.json":       body(entriesJSON),
		"/api/pokemon-types-api.json": body(categoriesJSON),
	})
	s := &Source{
		Base:       srv.URL + "/api",
		Entries:    "pokemon-api.json",
		Categories: "/pokemon-types-api.json",
		Client:     srv.Client(),
	}

	ds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []catalog.Category{{ID: 1, Name: "Fire"}, {ID: 2, Name: "Water"}}, ds.Categories)
	require.Len(t, ds.Entries, 2)
	assert.Equal(t, "Squirtle", ds.Entries[1].Name)
	assert.Equal(t, []int{2}, ds.Entries[1].CategoryIDs)
}

func TestLoadJoinsBothRequests(t *testing.T) {
	var (
		mu      sync.Mutex
		started int
		release = make(chan struct{})
	)
	wait := func(payload string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			started++
			if started == 2 {
				close(release)
			}
			mu.Unlock()
			select {
			case <-release:
			case <-time.After(2 * time.Second):
			}
			body(payload)(w, r)
		}
	}
	srv := newServer(t, map[string]http.HandlerFunc{
		"/e.json": wait(entriesJSON),
		"/c.json": wait(categoriesJSON),
	})
	s := &Source{Base: srv.URL, Entries: "e.json", Categories: "c.json", Client: srv.Client()}

	start := time.Now()
	ds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "both requests should be in flight at once")
	assert.Len(t, ds.Entries, 2)
	assert.Len(t, ds.Categories, 2)
}

func TestLoadStatusError(t *testing.T) {
	srv := newServer(t, map[string]http.HandlerFunc{
		"/e.json": body(entriesJSON),
		"/c.json": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		},
	})
	s := &Source{Base: srv.URL, Entries: "e.json", Categories: "c.json", Client: srv.Client()}

	ds, err := s.Load(context.Background())
	assert.Nil(t, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatus)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "categories", le.Dataset)
	assert.Equal(t, srv.URL+"/c.json", le.Location)
}

func TestLoadMalformedJSON(t *testing.T) {
	srv := newServer(t, map[string]http.HandlerFunc{
		"/e.json": body(`{"not":"an array"}`),
	})
	s := &Source{Base: srv.URL, Entries: "e.json", Client: srv.Client()}

	_, err := s.LoadEntries(context.Background())
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "entries", le.Dataset)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pokemon-api.json"), []byte(entriesJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pokemon-types-api.json"), []byte(categoriesJSON), 0o644))

	s := &Source{Base: dir, Entries: "pokemon-api.json", Categories: "pokemon-types-api.json"}
	ds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Entries, 2)
	assert.Len(t, ds.Categories, 2)
}

func TestLoadMissingFile(t *testing.T) {
	s := &Source{Base: t.TempDir(), Entries: "nope.json"}

	_, err := s.LoadEntries(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		base, location, want string
	}{
		{base: "", location: "a.json", want: "a.json"},
		{base: "/data", location: "a.json", want: "/data/a.json"},
		{base: "/data", location: "/abs/a.json", want: "/abs/a.json"},
		{base: "https://h.test", location: "a.json", want: "https://h.test/a.json"},
		{base: "https://h.test/api", location: "/a.json", want: "https://h.test/api/a.json"},
		{base: "https://h.test/api/", location: "a.json", want: "https://h.test/api/a.json"},
		{base: "/data", location: "http://other.test/a.json", want: "http://other.test/a.json"},
		{base: "file:///data", location: "a.json", want: "/data/a.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.base, tt.location), "Resolve(%q, %q)", tt.base, tt.location)
	}
}

func TestRootedLocationStaysUnderURLBase(t *testing.T) {
	s := &Source{
		Base:       "https://h.test/pokedex",
		Entries:    "/pokemon-api.json",
		Categories: "/pokemon-types-api.json",
	}
	assert.Equal(t, "https://h.test/pokedex/pokemon-api.json", s.EntriesLocation())
	assert.Equal(t, "https://h.test/pokedex/pokemon-types-api.json", s.CategoriesLocation())

	s.Base = "/srv/data"
	assert.Equal(t, "/pokemon-types-api.json", s.CategoriesLocation())
}
