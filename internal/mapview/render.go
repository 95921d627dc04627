package mapview

import (
	"fmt"
	"html"
	"io"
	"sort"
	"text/template"

	"mallmap/server/internal/models"
)

// DefaultViewBox matches the coordinate system of the default shape table
const DefaultViewBox = "0 0 800 1200"

// RegionView is a shape joined with its mall count and derived tiers
type RegionView struct {
	Shape     models.RegionShape `json:"shape"`
	Count     int                `json:"count"`
	Tier      Tier               `json:"tier"`
	TextTier  TextTier           `json:"text_tier"`
	ShowLabel bool               `json:"show_label"`
}

// Build joins every shape with its count by exact name. Shapes without a
// count get 0. The shape table is only read.
func Build(shapes []models.RegionShape, counts models.RegionCounts) []RegionView {
	views := make([]RegionView, len(shapes))
	for i, shape := range shapes {
		count := counts.Get(shape.Name)
		if count < 0 {
			count = 0
		}
		views[i] = RegionView{
			Shape:     shape,
			Count:     count,
			Tier:      TierFor(count),
			TextTier:  TextTierFor(count),
			ShowLabel: ShowLabel(count),
		}
	}
	return views
}

// Unmapped returns the regions that have malls but no shape in the table
func Unmapped(shapes []models.RegionShape, counts models.RegionCounts) []string {
	known := make(map[string]bool, len(shapes))
	for _, s := range shapes {
		known[s.Name] = true
	}

	var missing []string
	for _, name := range counts.Names() {
		if !known[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Rank lists regions by descending count, ties broken by name
func Rank(counts models.RegionCounts) []models.RegionStat {
	stats := make([]models.RegionStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, models.RegionStat{
			Name:  name,
			Count: count,
			Tier:  string(TierFor(count)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

var svgTemplate = template.Must(template.New("map").Funcs(template.FuncMap{
	"esc": html.EscapeString,
	"num": func(v float64) string { return fmt.Sprintf("%g", v) },
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{esc .ViewBox}}" role="img" aria-label="South Korea Mall Count Map">
{{- range .Views}}
  <g id="region-{{esc .Shape.ID}}" aria-label="{{esc .Shape.Name}}: {{.Count}} Malls">
    <path d="{{esc .Shape.Path}}" fill="{{.Tier.Fill}}" stroke="#ffffff" stroke-width="1.5" data-tier="{{.Tier}}"/>
{{- if .ShowLabel}}
    <text x="{{num .Shape.TextX}}" y="{{num .Shape.TextY}}" fill="{{.TextTier.Color}}" text-anchor="middle" dominant-baseline="middle" font-size="10" font-weight="bold">{{.Count}}</text>
{{- end}}
  </g>
{{- end}}
</svg>
`))

// RenderSVG writes the choropleth as a standalone SVG document
func RenderSVG(w io.Writer, views []RegionView, viewBox string) error {
	if viewBox == "" {
		viewBox = DefaultViewBox
	}
	data := struct {
		ViewBox string
		Views   []RegionView
	}{ViewBox: viewBox, Views: views}

	if err := svgTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render map: %w", err)
	}
	return nil
}
