package config

import (
	"fmt"
	"os"
)

// Load opens path and Parses it, matching SPEC_FULL.md §6's
// `config.Load(path string) (*Config, error)` entry point — the thin
// file-handle wrapper cmd/ergmcore calls instead of managing the
// os.Open/Parse/Close sequence itself at every call site.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: opening %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
