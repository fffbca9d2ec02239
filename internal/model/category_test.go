package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "defaults keep canonical order",
			in:   []string{"Palestra", "Abbonamenti ricorrenti"},
			want: []string{"Abbonamenti ricorrenti", "Palestra"},
		},
		{
			name: "user categories sorted case-insensitively after defaults",
			in:   []string{"viaggi", "Abbonamenti ricorrenti", "Affitto / Mutuo", "Palestra", "Bollette"},
			want: []string{"Abbonamenti ricorrenti", "Palestra", "Affitto / Mutuo", "Bollette", "viaggi"},
		},
		{
			name: "missing default is not invented",
			in:   []string{"Palestra", "Bollette"},
			want: []string{"Palestra", "Bollette"},
		},
		{
			name: "empty list stays empty",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategories(tt.in))
		})
	}
}

func TestMergeDefaultCategories(t *testing.T) {
	t.Run("missing defaults are added", func(t *testing.T) {
		got := MergeDefaultCategories([]string{"Bollette"})
		assert.Equal(t, []string{"Abbonamenti ricorrenti", "Palestra", "Bollette"}, got)
	})

	t.Run("case-insensitive match avoids duplicates", func(t *testing.T) {
		got := MergeDefaultCategories([]string{"palestra", "Bollette"})
		assert.Equal(t, []string{"Abbonamenti ricorrenti", "Bollette", "palestra"}, got)
	})

	t.Run("empty input yields the default set", func(t *testing.T) {
		got := MergeDefaultCategories(nil)
		assert.Equal(t, DefaultCategories, got)
	})

	t.Run("user categories are preserved", func(t *testing.T) {
		got := MergeDefaultCategories([]string{"Abbonamenti ricorrenti", "Palestra", "Viaggi"})
		assert.Equal(t, []string{"Abbonamenti ricorrenti", "Palestra", "Viaggi"}, got)
	})
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "Affitto / Mutuo", CollapseWhitespace("  Affitto  /   Mutuo "))
	assert.Equal(t, "", CollapseWhitespace("   "))
}
