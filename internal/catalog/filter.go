// Package catalog holds the pure operations shared by every campus catalog:
// filtering, replace-by-id mutators and the aggregates derived from them.
// Nothing in this package mutates its inputs.
package catalog

import "strings"

// All is the category selector that matches every record.
const All = "all"

// Searchable is implemented by records that can be filtered by category
// and free-text query.
type Searchable interface {
	CategoryName() string
	SearchFields() []string
}

// Filter returns the records whose category matches and whose search fields
// contain query, case-insensitively. An empty query matches everything and
// category All (or "") matches every category. Order is preserved.
func Filter[T Searchable](records []T, category, query string) []T {
	q := strings.ToLower(query)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matches(r, category, q) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single record passes the filter.
func Matches(r Searchable, category, query string) bool {
	return matches(r, category, strings.ToLower(query))
}

func matches(r Searchable, category, foldedQuery string) bool {
	if category != "" && category != All && r.CategoryName() != category {
		return false
	}
	if foldedQuery == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), foldedQuery) {
			return true
		}
	}
	return false
}
