package model

import "slices"

// IsCategory reports whether category is one of valid.
func IsCategory(valid []string, category string) bool {
	return slices.Contains(valid, category)
}
