package fuzz

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary(t *testing.T) {
	a := Extract("aba")
	b := Extract("ab")
	vocab := Vocabulary(a, b)
	assert.Equal(t, []Bigram{{Pad, 'a'}, {'a', Pad}, {'a', 'b'}, {'b', Pad}, {'b', 'a'}}, vocab)
}

func TestFrequencies(t *testing.T) {
	seq := Extract("aaa")
	vocab := Vocabulary(seq, Extract("ab"))
	freq := Frequencies(seq, vocab)
	assert.Len(t, freq, len(vocab))
	for i, v := range vocab {
		want := 0
		for _, b := range seq {
			if b == v {
				want++
			}
		}
		assert.Equal(t, want, freq[i], "count of %q", v.String())
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical sequences", a: "abc", b: "abc", expected: 1},
		{name: "disjoint sequences", a: "abc", b: "xyz", expected: 0},
		{name: "half the bigrams shared", a: "night", b: "nacht", expected: 0.5},
		{name: "same bigram multiset in another order", a: "john smith", b: "smith john", expected: 1},
		{name: "one interior bigram shared", a: "abcd", b: "xbcy", expected: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(Extract(tt.a), Extract(tt.b)))
			assert.Equal(t, tt.expected, Score(Extract(tt.b), Extract(tt.a)))
		})
	}
}

func TestScoreRepeatedBigrams(t *testing.T) {
	// "aaab" holds (a,a) twice: dot 5, squared norms 7 and 4.
	assert.InDelta(t, 5/math.Sqrt(28), Score(Extract("aaab"), Extract("aab")), 1e-15)
	assert.Equal(t, []int{1, 2, 1, 1}, Frequencies(Extract("aaab"), Vocabulary(Extract("aaab"), nil)))
}

func TestScoreEmptySequence(t *testing.T) {
	assert.Zero(t, Score(nil, Extract("abc")))
	assert.Zero(t, Score(Extract("abc"), nil))
	assert.Zero(t, Score(nil, nil))
}

func TestSimilarityNeverExceedsOne(t *testing.T) {
	// 3/(sqrt(3)*sqrt(3)) rounds above 1; the single root must not.
	assert.Equal(t, 1.0, similarity(3, 3, 3))
	assert.Equal(t, 1.0, similarity(5, 5, 5))
	assert.LessOrEqual(t, similarity(7, 7, 8), 1.0)
}

func TestSimilarityLargeNorms(t *testing.T) {
	tests := []struct {
		name        string
		dot, na, nb int
	}{
		{name: "product beyond int64", dot: 4_000_000_000, na: 4_000_000_001, nb: 4_000_000_003},
		{name: "product wraps negative", dot: 3_000_000_000, na: 3_100_000_000, nb: 3_000_000_001},
		{name: "equal norms", dot: 3_599_880_002, na: 3_599_880_004, nb: 3_599_880_004},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similarity(tt.dot, tt.na, tt.nb)
			want := float64(tt.dot) / (math.Sqrt(float64(tt.na)) * math.Sqrt(float64(tt.nb)))
			assert.False(t, math.IsNaN(got))
			assert.Less(t, got, 1.0)
			assert.InDelta(t, want, got, 1e-12)
		})
	}
	assert.Equal(t, 1.0, similarity(3_599_880_004, 3_599_880_004, 3_599_880_004))
}

// floatScore is a reference cosine computed in float64 from the frequency
// vectors.
func floatScore(a, b []Bigram) float64 {
	vocab := Vocabulary(a, b)
	fa, fb := Frequencies(a, vocab), Frequencies(b, vocab)
	var dot, na, nb float64
	for i := range vocab {
		dot += float64(fa[i]) * float64(fb[i])
		na += float64(fa[i]) * float64(fa[i])
		nb += float64(fb[i]) * float64(fb[i])
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func TestGramLongRepetitiveInput(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "long run with tail", a: strings.Repeat("a", 130000) + "xyz", b: strings.Repeat("a", 65000)},
		{name: "run against shorter run", a: strings.Repeat("a", 100000) + "xyz", b: strings.Repeat("a", 50000)},
		{name: "unequal tails", a: strings.Repeat("a", 70000), b: strings.Repeat("a", 60000) + "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gram(tt.a, tt.b)
			assert.False(t, math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 1.0)
			assert.InDelta(t, floatScore(Extract(tt.a), Extract(tt.b)), got, 1e-12)
			assert.Equal(t, got, Gram(tt.b, tt.a))
		})
	}
}
