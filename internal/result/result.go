// Package result persists a finished simulation run as a structured
// JSON record keyed by generation index.
package result

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cellula/internal/run"
)

// File is the on-disk schema of a simulation result.
type File struct {
	Generations  map[int]int `json:"generations"`
	StabilizedAt *int        `json:"stabilizedAt"`
}

// FromResult converts a run result into the persisted schema.
func FromResult(res run.Result) File {
	f := File{Generations: make(map[int]int, len(res.History))}
	for g, pop := range res.History {
		f.Generations[g] = pop
	}
	if res.Stabilized() {
		g := res.StabilizedAt
		f.StabilizedAt = &g
	}
	return f
}

// Write serializes res to <dir>/<name>.json, creating dir if needed,
// and returns the written path.
func Write(dir, name string, res run.Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create result dir: %w", err)
	}

	data, err := json.MarshalIndent(FromResult(res), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}
