package bruteforce

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
	"github.com/viant/sqlite-fuzz/fuzz"
	"github.com/viant/sqlite-fuzz/index"
)

// ErrDuplicateID is returned by Build when an id occurs more than once.
var ErrDuplicateID = errors.New("duplicate id")

// debugThreshold is the score above which candidates are logged at debug level.
const debugThreshold = 0.7

// Index is a simple brute-force fuzzy text index.
type Index struct {
	// Method selects the scorer; empty means partial_ratio.
	Method fuzz.Method
	// MinScore drops candidates scoring below it.
	MinScore float64

	ids   []string
	texts []string
}

// New returns an Index scoring with m.
func New(m fuzz.Method, minScore float64) *Index {
	return &Index{Method: m, MinScore: minScore}
}

// Build loads ids and texts. Ids must be unique.
func (i *Index) Build(ids []string, texts []string) error {
	if len(ids) != len(texts) {
		return fmt.Errorf("bruteforce: ids and texts length mismatch: %d != %d", len(ids), len(texts))
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("bruteforce: %w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	i.ids = append([]string(nil), ids...)
	i.texts = append([]string(nil), texts...)
	return nil
}

// Len returns the number of indexed texts.
func (i *Index) Len() int { return len(i.ids) }

// Query returns top-k by score. Equal scores are ordered by Damerau-Levenshtein
// distance to the query, then by id.
func (i *Index) Query(query string, k int) ([]string, []float64, error) {
	m := i.Method
	if m == "" {
		m = fuzz.MethodPartialRatio
	}
	score := m.Scorer()
	if score == nil {
		return nil, nil, fmt.Errorf("bruteforce: %w: %q", fuzz.ErrUnknownMethod, m)
	}
	if len(i.ids) == 0 {
		return nil, nil, nil
	}
	type scored struct {
		idx      int
		score    float64
		distance int
	}
	scoreds := make([]scored, 0, len(i.texts))
	for j, text := range i.texts {
		s := score(query, text)
		if s > debugThreshold {
			log.Debug().
				Str("query", query).
				Str("candidate", text).
				Float64("score", s).
				Str("method", string(m)).
				Msg("fuzzy candidate evaluation")
		}
		if s < i.MinScore {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s, distance: -1})
	}
	sort.Slice(scoreds, func(a, b int) bool {
		if scoreds[a].score != scoreds[b].score {
			return scoreds[a].score > scoreds[b].score
		}
		for _, c := range []int{a, b} {
			if scoreds[c].distance < 0 {
				scoreds[c].distance = edlib.DamerauLevenshteinDistance(query, i.texts[scoreds[c].idx])
			}
		}
		if scoreds[a].distance != scoreds[b].distance {
			return scoreds[a].distance < scoreds[b].distance
		}
		return i.ids[scoreds[a].idx] < i.ids[scoreds[b].idx]
	})
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

// MarshalBinary stores: n(uint32), then for each item:
// idLen(uint32), id bytes, textLen(uint32), text bytes.
func (i *Index) MarshalBinary() ([]byte, error) {
	size := 4
	for j := range i.ids {
		size += 8 + len(i.ids[j]) + len(i.texts[j])
	}
	out := make([]byte, 0, size)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(i.ids)))
	for j := range i.ids {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(i.ids[j])))
		out = append(out, i.ids[j]...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(i.texts[j])))
		out = append(out, i.texts[j]...)
	}
	return out, nil
}

// UnmarshalBinary restores the index from bytes. Method and MinScore are not
// part of the encoding and keep their current values.
func (i *Index) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.New("bruteforce: invalid data")
	}
	off := 0
	getString := func() (string, bool) {
		if off+4 > len(data) {
			return "", false
		}
		n := int(binary.LittleEndian.Uint32(data[off:]))
		off += 4
		if n > len(data)-off {
			return "", false
		}
		s := string(data[off : off+n])
		off += n
		return s, true
	}
	n := int(binary.LittleEndian.Uint32(data))
	off += 4
	ids := make([]string, 0, min(n, len(data)/8))
	texts := make([]string, 0, cap(ids))
	for j := 0; j < n; j++ {
		id, ok := getString()
		if !ok {
			return errors.New("bruteforce: truncated id")
		}
		text, ok := getString()
		if !ok {
			return errors.New("bruteforce: truncated text")
		}
		ids = append(ids, id)
		texts = append(texts, text)
	}
	if off != len(data) {
		return fmt.Errorf("bruteforce: %d trailing bytes", len(data)-off)
	}
	return i.Build(ids, texts)
}

// Ensure Index satisfies the index.Index interface.
var _ index.Index = (*Index)(nil)
