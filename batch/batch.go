package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/viant/sqlite-fuzz/fuzz"
	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned when the two input columns differ in length.
var ErrLengthMismatch = errors.New("batch: columns differ in length")

// Pair is one row of two present values.
type Pair struct {
	Left  string
	Right string
}

// Apply scores left[i] against right[i] with m for every row. A nil entry on
// either side yields a nil result.
func Apply(ctx context.Context, m fuzz.Method, left, right []*string, opts ...Option) ([]*float64, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(left), len(right))
	}
	score := m.Scorer()
	if score == nil {
		return nil, fmt.Errorf("%w: %q", fuzz.ErrUnknownMethod, m)
	}
	out := make([]*float64, len(left))
	err := run(ctx, len(left), newOptions(opts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if left[i] == nil || right[i] == nil {
				continue
			}
			s := score(*left[i], *right[i])
			out[i] = &s
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyPairs scores every pair with m. Pairs carry no missing values, so every
// row gets a score.
func ApplyPairs(ctx context.Context, m fuzz.Method, pairs []Pair, opts ...Option) ([]float64, error) {
	score := m.Scorer()
	if score == nil {
		return nil, fmt.Errorf("%w: %q", fuzz.ErrUnknownMethod, m)
	}
	out := make([]float64, len(pairs))
	err := run(ctx, len(pairs), newOptions(opts), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = score(pairs[i].Left, pairs[i].Right)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run splits [0, n) into batches and hands each to fn. Batches write disjoint
// index ranges, so fn needs no locking.
func run(ctx context.Context, n int, o options, fn func(lo, hi int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	batches := 0
	for lo := 0; lo < n && gctx.Err() == nil; lo += o.batchSize {
		hi := min(lo+o.batchSize, n)
		batches++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug().Int("rows", n).Int("batches", batches).Int("parallelism", o.parallelism).Msg("batch scored")
	return nil
}
