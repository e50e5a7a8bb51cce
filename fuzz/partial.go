package fuzz

// PartialRatio scores the best alignment of the shorter string inside the
// longer one. Strings of equal character length are compared in full, as in
// Gram. Otherwise every window of the longer string that is as long as the
// shorter one is scored, one character shift at a time, and the maximum is
// returned. A window scoring exactly 1 ends the search.
//
// The longer string always slides, so PartialRatio(a, b) == PartialRatio(b, a).
func PartialRatio(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}
	if s1 == s2 {
		return 1
	}
	long, short := []rune(s1), []rune(s2)
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(long) == len(short) {
		return Score(extract(long), extract(short))
	}
	return newWindow(long, short).best()
}

// window keeps the bigram counts of a sliding substring of long together with
// its dot product against short and its squared magnitude. Sliding by one
// character replaces three bigrams, so each step is constant work and the
// integer sums match a full recount of the window exactly.
type window struct {
	long      []rune
	width     int
	offset    int
	short     map[Bigram]int
	shortNorm int
	counts    map[Bigram]int
	dot       int
	norm      int
}

func newWindow(long, short []rune) *window {
	w := &window{
		long:   long,
		width:  len(short),
		short:  make(map[Bigram]int, len(short)+1),
		counts: make(map[Bigram]int, len(short)+1),
	}
	for _, b := range extract(short) {
		c := w.short[b]
		w.short[b] = c + 1
		w.shortNorm += 2*c + 1
	}
	for _, b := range extract(long[:w.width]) {
		w.add(b)
	}
	return w
}

func (w *window) add(b Bigram) {
	c := w.counts[b]
	w.counts[b] = c + 1
	w.norm += 2*c + 1
	w.dot += w.short[b]
}

func (w *window) remove(b Bigram) {
	c := w.counts[b]
	if c == 1 {
		delete(w.counts, b)
	} else {
		w.counts[b] = c - 1
	}
	w.norm -= 2*c - 1
	w.dot -= w.short[b]
}

// slide moves the window one character to the right. The caller ensures a
// character remains past the current window.
func (w *window) slide() {
	first, last, next := w.long[w.offset], w.long[w.offset+w.width-1], w.long[w.offset+w.width]
	w.remove(Bigram{Pad, first})
	w.remove(Bigram{last, Pad})
	if w.width > 1 {
		w.remove(Bigram{first, w.long[w.offset+1]})
		w.add(Bigram{last, next})
	}
	w.offset++
	w.add(Bigram{Pad, w.long[w.offset]})
	w.add(Bigram{next, Pad})
}

func (w *window) score() float64 { return similarity(w.dot, w.norm, w.shortNorm) }

func (w *window) best() float64 {
	var best float64
	for {
		s := w.score()
		if s == 1 {
			return 1
		}
		best = max(best, s)
		if w.offset+w.width == len(w.long) {
			return best
		}
		w.slide()
	}
}
