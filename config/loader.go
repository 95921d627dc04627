package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"mallmap/server/internal/models"
)

var (
	regionShapes []models.RegionShape
	regionLock   sync.RWMutex
)

// LoadRegionShapes reads the region shape table from a JSON or YAML file.
// An empty path selects DefaultRegionShapes.
func LoadRegionShapes(path string) ([]models.RegionShape, error) {
	if path == "" {
		return cloneShapes(DefaultRegionShapes), nil
	}

	// Get absolute path to config file
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read region file: %w", err)
	}

	var shapes []models.RegionShape
	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &shapes)
	default:
		err = json.Unmarshal(data, &shapes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse region file: %w", err)
	}

	if err := validateShapes(shapes); err != nil {
		return nil, err
	}
	return shapes, nil
}

func validateShapes(shapes []models.RegionShape) error {
	seen := make(map[string]bool, len(shapes))
	for i, s := range shapes {
		if s.Name == "" {
			return fmt.Errorf("region shape %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate region shape: %s", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// SetRegionShapes installs the shape table used by the server
func SetRegionShapes(shapes []models.RegionShape) {
	regionLock.Lock()
	defer regionLock.Unlock()
	regionShapes = cloneShapes(shapes)
}

// GetRegionShapes returns a copy of the installed table, or the defaults when
// none was installed
func GetRegionShapes() []models.RegionShape {
	regionLock.RLock()
	defer regionLock.RUnlock()

	if regionShapes == nil {
		return cloneShapes(DefaultRegionShapes)
	}
	return cloneShapes(regionShapes)
}

func cloneShapes(shapes []models.RegionShape) []models.RegionShape {
	out := make([]models.RegionShape, len(shapes))
	copy(out, shapes)
	return out
}
