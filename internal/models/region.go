package models

import "sort"

// RegionShape is one entry of the static map shape table. It is matched to
// mall counts by Name only.
type RegionShape struct {
	Name  string  `json:"name" yaml:"name"`
	ID    string  `json:"id" yaml:"id"`
	Path  string  `json:"d" yaml:"d"`
	TextX float64 `json:"textX" yaml:"textX"`
	TextY float64 `json:"textY" yaml:"textY"`
}

// RegionCounts maps a region name to the number of malls in it
type RegionCounts map[string]int

// Get returns the count for a region, 0 when the region has no malls
func (rc RegionCounts) Get(name string) int {
	return rc[name]
}

// Total sums all region counts
func (rc RegionCounts) Total() int {
	total := 0
	for _, n := range rc {
		total += n
	}
	return total
}

// Names returns the region names in sorted order
func (rc RegionCounts) Names() []string {
	names := make([]string, 0, len(rc))
	for name := range rc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegionStat is a single row of the region ranking
type RegionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Tier  string `json:"tier"`
}
