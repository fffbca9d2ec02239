package model

import (
	"sort"
	"strings"
)

// DefaultCategories are always present, in this order, at the head of the
// category list.
var DefaultCategories = []string{"Abbonamenti ricorrenti", "Palestra"}

// NormalizeCategories returns the canonical ordering of a category list:
// known default categories first, in their canonical order, followed by the
// remaining categories sorted case-insensitively. Input order is not
// preserved; the input slice is not modified.
func NormalizeCategories(categories []string) []string {
	present := make(map[string]bool, len(categories))
	for _, c := range categories {
		present[c] = true
	}

	base := make([]string, 0, len(DefaultCategories))
	for _, d := range DefaultCategories {
		if present[d] {
			base = append(base, d)
		}
	}

	isBase := make(map[string]bool, len(base))
	for _, b := range base {
		isBase[b] = true
	}

	rest := make([]string, 0, len(categories))
	for _, c := range categories {
		if !isBase[c] {
			rest = append(rest, c)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return strings.ToLower(rest[i]) < strings.ToLower(rest[j])
	})

	return append(base, rest...)
}

// MergeDefaultCategories adds any default category missing from the list
// (case-insensitive match) and returns the normalized result. Used when
// loading documents saved before a default category was introduced.
func MergeDefaultCategories(categories []string) []string {
	lowered := make(map[string]bool, len(categories))
	for _, c := range categories {
		lowered[strings.ToLower(c)] = true
	}

	merged := make([]string, len(categories))
	copy(merged, categories)
	for _, d := range DefaultCategories {
		if !lowered[strings.ToLower(d)] {
			merged = append(merged, d)
		}
	}

	return NormalizeCategories(merged)
}

// CollapseWhitespace trims a category name and collapses internal whitespace
// runs to single spaces.
func CollapseWhitespace(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
