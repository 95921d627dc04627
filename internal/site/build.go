// Package site writes the catalog, region ranking and map as static files.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"mallmap/server/internal/catalog"
	"mallmap/server/internal/geometry"
	"mallmap/server/internal/mapview"
	"mallmap/server/internal/models"
)

// Summary reports what a build produced
type Summary struct {
	Malls    int
	Regions  int
	Excluded int
	Unmapped []string
	Files    []string
}

type regionsFile struct {
	Regions  []models.RegionStat `json:"regions"`
	Total    int                 `json:"total"`
	Excluded int                 `json:"excluded"`
}

type mapFile struct {
	ViewBox  string               `json:"viewBox"`
	Regions  []mapview.RegionView `json:"regions"`
	Total    int                  `json:"total"`
	Unmapped []string             `json:"unmapped"`
}

// Builder renders one catalog snapshot into a directory
type Builder struct {
	outDir string
	shapes []models.RegionShape
	logger *logrus.Logger
	files  []string
}

func NewBuilder(outDir string, shapes []models.RegionShape, logger *logrus.Logger) *Builder {
	if logger == nil {
		logger = logrus.New()
	}
	return &Builder{outDir: outDir, shapes: shapes, logger: logger}
}

// MallFileName is the file name used for a mall's detail page data
func MallFileName(id string) string {
	return url.PathEscape(id) + ".json"
}

// Build writes every output file for store
func (b *Builder) Build(store *catalog.Store) (*Summary, error) {
	if store == nil {
		return nil, fmt.Errorf("no catalog to build")
	}
	b.files = nil

	if err := os.MkdirAll(filepath.Join(b.outDir, "malls"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	all := store.All()
	counts := catalog.Aggregate(all)
	views := mapview.Build(b.shapes, counts)
	unmapped := mapview.Unmapped(b.shapes, counts)
	if unmapped == nil {
		unmapped = []string{}
	}
	excluded := catalog.Unregioned(all)

	if err := b.writeJSON("malls.json", all); err != nil {
		return nil, err
	}
	if err := b.writeJSON("regions.json", regionsFile{
		Regions:  mapview.Rank(counts),
		Total:    counts.Total(),
		Excluded: excluded,
	}); err != nil {
		return nil, err
	}
	if err := b.writeJSON("map.json", mapFile{
		ViewBox:  mapview.DefaultViewBox,
		Regions:  views,
		Total:    counts.Total(),
		Unmapped: unmapped,
	}); err != nil {
		return nil, err
	}

	var svg bytes.Buffer
	if err := mapview.RenderSVG(&svg, views, mapview.DefaultViewBox); err != nil {
		return nil, err
	}
	if err := b.write("map.svg", svg.Bytes()); err != nil {
		return nil, err
	}

	geo, err := geometry.RegionFeatures(views, b.logger).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode map features: %w", err)
	}
	if err := b.write("map.geojson", geo); err != nil {
		return nil, err
	}

	for _, m := range all {
		if err := b.writeJSON(filepath.Join("malls", MallFileName(m.ID)), m); err != nil {
			return nil, err
		}
	}

	if len(unmapped) > 0 {
		b.logger.WithField("regions", unmapped).Warn("Regions with malls have no map shape")
	}
	b.logger.WithFields(logrus.Fields{
		"out":   b.outDir,
		"malls": len(all),
		"files": len(b.files),
	}).Info("Static build complete")

	return &Summary{
		Malls:    len(all),
		Regions:  len(counts),
		Excluded: excluded,
		Unmapped: unmapped,
		Files:    b.files,
	}, nil
}

func (b *Builder) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return b.write(name, append(data, '\n'))
}

func (b *Builder) write(name string, data []byte) error {
	path := filepath.Join(b.outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	b.files = append(b.files, name)
	return nil
}
