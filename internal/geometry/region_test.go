package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mallmap/server/internal/mapview"
	"mallmap/server/internal/models"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expected    orb.Polygon
		expectError bool
	}{
		{
			name: "Closed square",
			path: "M100 100 L120 100 L120 120 L100 120 Z",
			expected: orb.Polygon{orb.Ring{
				{100, 100}, {120, 100}, {120, 120}, {100, 120}, {100, 100},
			}},
		},
		{
			name: "Implicit lineto and commas",
			path: "M0,0 10,0 10,10 Z",
			expected: orb.Polygon{orb.Ring{
				{0, 0}, {10, 0}, {10, 10}, {0, 0},
			}},
		},
		{
			name: "Relative commands",
			path: "m10 10 l10 0 l0 10 z",
			expected: orb.Polygon{orb.Ring{
				{10, 10}, {20, 10}, {20, 20}, {10, 10},
			}},
		},
		{
			name: "Relative move after close starts from subpath start",
			path: "m10 10 l10 0 l0 10 z m5 5 l10 0 l0 10 z",
			expected: orb.Polygon{
				orb.Ring{{10, 10}, {20, 10}, {20, 20}, {10, 10}},
				orb.Ring{{15, 15}, {25, 15}, {25, 25}, {15, 15}},
			},
		},
		{
			name: "Unclosed path gets closed",
			path: "M0 0 L5 0 L5 5",
			expected: orb.Polygon{orb.Ring{
				{0, 0}, {5, 0}, {5, 5}, {0, 0},
			}},
		},
		{name: "Curve command", path: "M0 0 C1 1 2 2 3 3 Z", expectError: true},
		{name: "Odd coordinates", path: "M0 0 L5", expectError: true},
		{name: "Empty", path: "", expectError: true},
		{name: "Too few points", path: "M0 0 L1 1 Z", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polygon, err := ParsePath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, polygon)
		})
	}
}

func TestLabelPoint(t *testing.T) {
	polygon, err := ParsePath("M0 0 L10 0 L10 10 L0 10 Z")
	require.NoError(t, err)

	anchored := LabelPoint(models.RegionShape{TextX: 3, TextY: 4}, polygon)
	assert.Equal(t, orb.Point{3, 4}, anchored)

	centroid := LabelPoint(models.RegionShape{}, polygon)
	assert.InDelta(t, 5, centroid[0], 0.0001)
	assert.InDelta(t, 5, centroid[1], 0.0001)
}

func TestRegionFeatures(t *testing.T) {
	shapes := []models.RegionShape{
		{Name: "서울특별시", ID: "seoul", Path: "M100 100 L120 100 L120 120 L100 120 Z", TextX: 110, TextY: 110},
		{Name: "broken", ID: "broken", Path: "Q1 2"},
	}
	views := mapview.Build(shapes, models.RegionCounts{"서울특별시": 8})

	fc := RegionFeatures(views, logrus.New())
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "seoul", f.ID)
	assert.Equal(t, "서울특별시", f.Properties["name"])
	assert.Equal(t, 8, f.Properties["count"])
	assert.Equal(t, "medium", f.Properties["tier"])
	assert.Equal(t, "dark", f.Properties["text_tier"])
	assert.InDelta(t, 400, math.Abs(f.Properties["area"].(float64)), 0.0001)
}
