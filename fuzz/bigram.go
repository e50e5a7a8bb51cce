package fuzz

// Pad is the boundary sentinel placed before the first and after the last
// character of a string.
const Pad = ' '

// Bigram is an ordered pair of adjacent characters. Either side may be Pad.
type Bigram struct {
	First  rune
	Second rune
}

// Compare orders bigrams by first then second character. It returns -1, 0 or
// +1 and can be passed to the slices package.
func (b Bigram) Compare(o Bigram) int {
	switch {
	case b.First < o.First:
		return -1
	case b.First > o.First:
		return 1
	case b.Second < o.Second:
		return -1
	case b.Second > o.Second:
		return 1
	}
	return 0
}

// String renders the bigram with its two characters.
func (b Bigram) String() string { return string([]rune{b.First, b.Second}) }

// Extract returns the padded bigram sequence of s. A string of n characters
// yields n+1 bigrams; the empty string yields none.
func Extract(s string) []Bigram { return extract([]rune(s)) }

func extract(chars []rune) []Bigram {
	n := len(chars)
	if n == 0 {
		return nil
	}
	seq := make([]Bigram, 0, n+1)
	seq = append(seq, Bigram{Pad, chars[0]})
	for i := 0; i < n-1; i++ {
		seq = append(seq, Bigram{chars[i], chars[i+1]})
	}
	return append(seq, Bigram{chars[n-1], Pad})
}
