// File: pkg/aggregate/filter.go
package aggregate

import "strings"

// Filter is the selection predicate for aggregation: a file qualifies when
// its path ends with one of the allow-listed extensions and contains none of
// the excluded substrings. Both checks are case-sensitive and operate on the
// whole path as encountered, root prefix included.
type Filter struct {
	extensions []string
	excludes   []string
}

// NewFilter builds a Filter from an extension allow-list and exclusion
// substrings. The inputs are copied.
func NewFilter(extensions, excludes []string) *Filter {
	return &Filter{
		extensions: append([]string(nil), extensions...),
		excludes:   append([]string(nil), excludes...),
	}
}

// Matches reports whether path passes the selection predicate.
func (f *Filter) Matches(path string) bool {
	return f.hasAllowedExtension(path) && !f.Excluded(path)
}

// Excluded reports whether any exclusion substring occurs in path.
// Exclusion is inherited: every path below an excluded directory contains
// that directory's substring, so traversal may skip such subtrees wholesale.
func (f *Filter) Excluded(path string) bool {
	for _, sub := range f.excludes {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

func (f *Filter) hasAllowedExtension(path string) bool {
	for _, ext := range f.extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
