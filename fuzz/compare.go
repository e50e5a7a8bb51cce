package fuzz

// Gram compares s1 and s2 in full. Empty input scores 0, equal input scores 1.
func Gram(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}
	if s1 == s2 {
		return 1
	}
	return Score(Extract(s1), Extract(s2))
}

// Ratio is Gram exposed under its ratio-style name; the two never diverge.
func Ratio(s1, s2 string) float64 { return Gram(s1, s2) }
