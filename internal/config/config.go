// Package config holds the read-only configuration the core consumes.
//
// Every value has a documented default; a missing file or missing
// field falls back to its default rather than failing. The core never
// persists configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/chordscope/internal/chord"
)

// Config carries the externally supplied settings the core reads.
type Config struct {
	// DisplayProfile selects symbol or text chord rendering.
	// Default: symbol.
	DisplayProfile chord.Profile

	// SequenceTimeout is the live-tracking timeout.
	// Default: 3000ms.
	SequenceTimeout time.Duration

	// SearchLimit caps fuzzy search results. Default: 50.
	SearchLimit int

	// DeriveCategories toggles category derivation from command
	// identifiers. Default: on.
	DeriveCategories bool
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		DisplayProfile:   chord.ProfileSymbol,
		SequenceTimeout:  3000 * time.Millisecond,
		SearchLimit:      50,
		DeriveCategories: true,
	}
}

// LoadBytes reads settings from JSON content. Fields that are absent
// or carry the wrong type keep their defaults.
func LoadBytes(data []byte) Config {
	cfg := Default()
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return cfg
	}

	if v := root.Get("displayProfile"); v.Type == gjson.String {
		cfg.DisplayProfile = chord.ProfileFromName(v.String())
	}
	if v := root.Get("sequenceTimeoutMs"); v.Type == gjson.Number && v.Int() > 0 {
		cfg.SequenceTimeout = time.Duration(v.Int()) * time.Millisecond
	}
	if v := root.Get("searchLimit"); v.Type == gjson.Number && v.Int() > 0 {
		cfg.SearchLimit = int(v.Int())
	}
	if v := root.Get("deriveCategories"); v.IsBool() {
		cfg.DeriveCategories = v.Bool()
	}

	return cfg
}

// Load reads settings from a JSON file. A missing file yields the
// defaults; any other read failure is reported.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file: %w", err)
	}
	return LoadBytes(data), nil
}
