package fuzz

import (
	"math"
	"slices"
)

// Score returns the cosine similarity between the frequency vectors of a and
// b over their joint vocabulary. The result lies in [0, 1]. Sequences derived
// from an empty string have no magnitude; Score reports 0 for them.
func Score(a, b []Bigram) float64 {
	vocab := Vocabulary(a, b)
	return cosine(Frequencies(a, vocab), Frequencies(b, vocab))
}

// Vocabulary returns the sorted, duplicate-free union of a and b.
func Vocabulary(a, b []Bigram) []Bigram {
	vocab := make([]Bigram, 0, len(a)+len(b))
	vocab = append(vocab, a...)
	vocab = append(vocab, b...)
	slices.SortFunc(vocab, Bigram.Compare)
	return slices.Compact(vocab)
}

// Frequencies counts, for every vocabulary entry, how often it occurs in seq.
// freq[i] always counts vocab[i]; bigrams missing from vocab are ignored.
func Frequencies(seq, vocab []Bigram) []int {
	freq := make([]int, len(vocab))
	for _, b := range seq {
		if i, ok := slices.BinarySearchFunc(vocab, b, Bigram.Compare); ok {
			freq[i]++
		}
	}
	return freq
}

func cosine(fa, fb []int) float64 {
	var dot, na, nb int
	for i := range fa {
		dot += fa[i] * fb[i]
		na += fa[i] * fa[i]
		nb += fb[i] * fb[i]
	}
	return similarity(dot, na, nb)
}

// similarity is dot / sqrt(na*nb) over integer sums. The product is formed in
// float64 since na*nb overflows int once a bigram repeats tens of thousands of
// times. Equal norms divide by the norm itself, so equal vectors score exactly
// 1 at any size.
func similarity(dot, na, nb int) float64 {
	if dot == 0 || na == 0 || nb == 0 {
		return 0
	}
	if na == nb {
		return min(float64(dot)/float64(na), 1)
	}
	return min(float64(dot)/math.Sqrt(float64(na)*float64(nb)), 1)
}
