package selection

import (
	"fmt"

	"tableflip.dev/pokedex/pkg/catalog"
)

// Keys used in the persisted selection store.
const (
	KeyEntry    = "pokemon-selected"
	KeyCategory = "tipo-selected"
)

// KV is the persisted selection store. Get reports false for keys that were
// never written.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Status describes where the controller is in its startup sequence.
type Status int

const (
	// StatusLoading is the state until both datasets have arrived.
	StatusLoading Status = iota
	// StatusReady means both datasets arrived and the persisted selection was
	// restored.
	StatusReady
	// StatusFailed means at least one dataset failed to load.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "load failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Dataset names one of the two datasets the controller waits on.
type Dataset string

const (
	DatasetEntries    Dataset = "entries"
	DatasetCategories Dataset = "categories"
)

// View is a point-in-time copy of the controller state and its derived lists.
type View struct {
	Status             Status
	Err                error
	SearchText         string
	SelectedCategory   *catalog.Category
	SelectedEntry      *catalog.Entry
	FilteredCategories []catalog.Category
	FilteredEntries    []catalog.Entry
}
