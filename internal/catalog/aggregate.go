package catalog

import "mallmap/server/internal/models"

// Aggregate counts malls per region. Malls without a region are skipped and
// never produce an empty-name bucket. Pass the full catalog, not a search
// result: the map always shows total counts.
func Aggregate(malls []models.Mall) models.RegionCounts {
	counts := make(models.RegionCounts)
	for i := range malls {
		if !malls[i].HasRegion() {
			continue
		}
		counts[malls[i].Region]++
	}
	return counts
}

// Unregioned returns how many malls were left out of the aggregation
func Unregioned(malls []models.Mall) int {
	n := 0
	for i := range malls {
		if !malls[i].HasRegion() {
			n++
		}
	}
	return n
}
