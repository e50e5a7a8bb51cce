package fuzz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Bigram
	}{
		{
			name:     "empty string has no bigrams",
			input:    "",
			expected: nil,
		},
		{
			name:     "single character is padded on both sides",
			input:    "a",
			expected: []Bigram{{Pad, 'a'}, {'a', Pad}},
		},
		{
			name:     "interior pairs between boundary bigrams",
			input:    "abc",
			expected: []Bigram{{Pad, 'a'}, {'a', 'b'}, {'b', 'c'}, {'c', Pad}},
		},
		{
			name:     "duplicates are kept",
			input:    "aaa",
			expected: []Bigram{{Pad, 'a'}, {'a', 'a'}, {'a', 'a'}, {'a', Pad}},
		},
		{
			name:     "multi-byte characters are single characters",
			input:    "héé",
			expected: []Bigram{{Pad, 'h'}, {'h', 'é'}, {'é', 'é'}, {'é', Pad}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.input))
		})
	}
}

func TestExtractLength(t *testing.T) {
	for _, s := range []string{"x", "night", "日本語テキスト", "john smith"} {
		assert.Len(t, Extract(s), len([]rune(s))+1, s)
	}
}

func TestBigramCompare(t *testing.T) {
	assert.Equal(t, 0, Bigram{'a', 'b'}.Compare(Bigram{'a', 'b'}))
	assert.Equal(t, -1, Bigram{'a', 'z'}.Compare(Bigram{'b', 'a'}))
	assert.Equal(t, 1, Bigram{'b', 'a'}.Compare(Bigram{'a', 'z'}))
	assert.Equal(t, -1, Bigram{'a', 'a'}.Compare(Bigram{'a', 'b'}))
	assert.Equal(t, -1, Bigram{Pad, 'z'}.Compare(Bigram{'a', Pad}))
	assert.Equal(t, "ab", Bigram{'a', 'b'}.String())
}
