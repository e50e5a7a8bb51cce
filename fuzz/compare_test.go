package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGram(t *testing.T) {
	tests := []struct {
		name     string
		s1       string
		s2       string
		expected float64
	}{
		{name: "empty left", s1: "", s2: "abc", expected: 0},
		{name: "empty right", s1: "abc", s2: "", expected: 0},
		{name: "both empty", s1: "", s2: "", expected: 0},
		{name: "exact match", s1: "abc", s2: "abc", expected: 1},
		{name: "night nacht", s1: "night", s2: "nacht", expected: 0.5},
		{name: "one substitution", s1: "abc", s2: "abd", expected: 0.5},
		{name: "no shared bigrams", s1: "mary willis", s2: "john smith", expected: 0},
		{name: "swapped single characters", s1: "ab", s2: "ba", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Gram(tt.s1, tt.s2))
			assert.Equal(t, tt.expected, Ratio(tt.s1, tt.s2))
		})
	}
}

// Baselines for inputs whose score is not a short binary fraction.
func TestGramBaselines(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected float64
	}{
		{s1: "john  smith", s2: "john smith", expected: 0.9574271077563381},
		{s1: "john", s2: "john smith", expected: 0.674199862463242},
		{s1: "albert johnson", s2: "john smith", expected: 0.3892494720807615},
		{s1: "abcdef", s2: "cde", expected: 0.3779644730092272},
		{s1: "héllo", s2: "hello", expected: 0.6666666666666666},
		{s1: "hello world", s2: "world", expected: 0.7071067811865476},
	}

	for _, tt := range tests {
		t.Run(tt.s1+"|"+tt.s2, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Gram(tt.s1, tt.s2), 1e-12)
		})
	}
}

func TestGramStrictlyBetween(t *testing.T) {
	got := Gram("night", "nacht")
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
}
