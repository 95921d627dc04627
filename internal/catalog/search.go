package catalog

import (
	"strings"

	"mallmap/server/internal/models"
)

// SearchResult is the outcome of a search. Active is false when the query was
// empty after trimming, in which case Malls is the whole input.
type SearchResult struct {
	Query  string
	Active bool
	Malls  []models.Mall
}

// NoMatches reports a non-empty query that matched nothing
func (r SearchResult) NoMatches() bool {
	return r.Active && len(r.Malls) == 0
}

// Search runs Filter and keeps the normalized query alongside the matches
func Search(malls []models.Mall, query string) SearchResult {
	q := strings.TrimSpace(query)
	return SearchResult{
		Query:  q,
		Active: q != "",
		Malls:  Filter(malls, q),
	}
}

// Filter returns the malls whose name, region, city or any tag contains the
// query as a case-insensitive substring, in their original order. An empty
// query returns the input unchanged.
func Filter(malls []models.Mall, query string) []models.Mall {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return malls
	}

	matched := make([]models.Mall, 0)
	for i := range malls {
		if Matches(&malls[i], q) {
			matched = append(matched, malls[i])
		}
	}
	return matched
}

// Matches reports whether m matches an already lower-cased, trimmed query
func Matches(m *models.Mall, q string) bool {
	if contains(m.Name, q) || contains(m.Region, q) {
		return true
	}
	if m.City != nil && contains(*m.City, q) {
		return true
	}
	for _, tag := range m.Tags {
		if contains(tag, q) {
			return true
		}
	}
	return false
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}
