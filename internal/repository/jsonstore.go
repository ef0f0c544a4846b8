// Package repository contains the repository layer for the Portal88 Wall API
package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/portal88/wallapi/pkg/utils/zaplogger"
)

// Store reads and writes whole collections as pretty-printed JSON files
// under a single data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given data directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads a collection file into v. A missing, empty or unreadable
// file leaves v untouched, so callers start with an empty collection.
func (s *Store) Load(name string, v interface{}) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			zaplogger.Error("failed to read collection, starting empty", zaplogger.Fields{
				"file":  s.path(name),
				"error": err.Error(),
			})
		}
		return
	}
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		zaplogger.Error("failed to parse collection, starting empty", zaplogger.Fields{
			"file":  s.path(name),
			"error": err.Error(),
		})
	}
}

// Save writes a collection file, pretty-printed. Write failures are
// returned to the caller and must fail the mutation that triggered them.
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0644)
}
