package geometry

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"

	"mallmap/server/internal/mapview"
	"mallmap/server/internal/models"
)

// ParsePath converts an SVG path made of move/line/close commands into a
// polygon in viewBox coordinates. Each subpath becomes one ring. Curves are
// not supported.
func ParsePath(d string) (orb.Polygon, error) {
	tokens := tokenize(d)

	var (
		polygon orb.Polygon
		ring    orb.Ring
		cmd     rune
		cursor  orb.Point
		start   orb.Point
	)

	closeRing := func() {
		if len(ring) == 0 {
			return
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		polygon = append(polygon, ring)
		ring = nil
	}

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if r := []rune(tok); len(r) == 1 && unicode.IsLetter(r[0]) {
			cmd = r[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				closeRing()
				// The current point returns to the subpath start.
				cursor = start
			}
			continue
		}

		switch cmd {
		case 'M', 'm', 'L', 'l':
		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}

		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("odd number of coordinates in path")
		}
		x, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", tokens[i], err)
		}
		y, err := strconv.ParseFloat(tokens[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", tokens[i+1], err)
		}
		i += 2

		p := orb.Point{x, y}
		if unicode.IsLower(cmd) {
			p = orb.Point{cursor[0] + x, cursor[1] + y}
		}

		if cmd == 'M' || cmd == 'm' {
			closeRing()
			start = p
			// Extra pairs after a moveto are implicit linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		}
		ring = append(ring, p)
		cursor = p
	}
	closeRing()

	if len(polygon) == 0 {
		return nil, fmt.Errorf("path has no points")
	}
	for _, r := range polygon {
		if len(r) < 4 {
			return nil, fmt.Errorf("ring needs at least 3 distinct points")
		}
	}
	return polygon, nil
}

func tokenize(d string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range d {
		switch {
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			tokens = append(tokens, string(r))
		case r == ',' || unicode.IsSpace(r):
			flush()
		case r == '-' && cur.Len() > 0 && !strings.HasSuffix(cur.String(), "e"):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// LabelPoint returns the configured label anchor, or the polygon centroid when
// the shape has none
func LabelPoint(shape models.RegionShape, polygon orb.Polygon) orb.Point {
	if shape.TextX != 0 || shape.TextY != 0 {
		return orb.Point{shape.TextX, shape.TextY}
	}
	centroid, _ := planar.CentroidArea(polygon)
	return centroid
}

// RegionFeatures exports the map as GeoJSON. Shapes whose path cannot be
// parsed are skipped and logged.
func RegionFeatures(views []mapview.RegionView, logger *logrus.Logger) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, v := range views {
		polygon, err := ParsePath(v.Shape.Path)
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField("region", v.Shape.Name).Warn("Skipping region with unreadable path")
			}
			continue
		}

		label := LabelPoint(v.Shape, polygon)
		feature := geojson.NewFeature(polygon)
		feature.ID = v.Shape.ID
		feature.Properties = geojson.Properties{
			"name":       v.Shape.Name,
			"count":      v.Count,
			"tier":       string(v.Tier),
			"text_tier":  string(v.TextTier),
			"show_label": v.ShowLabel,
			"fill":       v.Tier.Fill(),
			"label":      []float64{label[0], label[1]},
			"area":       planar.Area(polygon),
		}
		fc.Append(feature)
	}

	return fc
}
