package store

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the persisted selection store: one small file per key under
// the state directory.
type Persistence interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear(key string) error
	Keys(ctx context.Context) []string
}

// Load opens the diskv-backed store described by cfg. A nil cfg loads the
// configuration from disk and environment.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		settings, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = settings
	}

	basePath := strings.TrimSpace(cfg.StatePath())
	if basePath == "" {
		return nil, errors.New("store: state path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024, // 1KB, the values are names
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Get treats any read failure as an absent key.
func (p *persistence) Get(key string) (string, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *persistence) Set(key, value string) error {
	if key == "" {
		return errors.New("store: key required")
	}
	return p.d.Write(key, []byte(value))
}

// Clear erases key. Clearing an absent key is not an error.
func (p *persistence) Clear(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
