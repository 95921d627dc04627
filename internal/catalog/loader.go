package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mallmap/server/internal/models"
)

var (
	ErrDuplicateID   = errors.New("duplicate mall id")
	ErrInvalidRecord = errors.New("invalid mall record")
)

// LoadFile reads the mall catalog from a JSON file and builds a Store.
// Any read, parse or validation failure is returned; no partial store is built.
func LoadFile(path string) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	store, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", absPath, err)
	}
	return store, nil
}

// Parse decodes a JSON array of mall records
func Parse(r io.Reader) (*Store, error) {
	var malls []models.Mall
	if err := json.NewDecoder(r).Decode(&malls); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	for i := range malls {
		if err := validate(&malls[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return NewStore(malls)
}

func validate(m *models.Mall) error {
	if m.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: mall %s has no name", ErrInvalidRecord, m.ID)
	}
	if m.ClickCount != nil && *m.ClickCount < 0 {
		return fmt.Errorf("%w: mall %s has negative clickCount", ErrInvalidRecord, m.ID)
	}
	return nil
}
