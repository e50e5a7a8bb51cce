package batch

import "runtime"

const defaultBatchSize = 1024

type options struct {
	batchSize   int
	parallelism int
}

// Option configures Apply.
type Option func(*options)

// WithBatchSize sets how many rows one worker scores at a time. Values below 1
// keep the default of 1024.
func WithBatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithParallelism caps the number of batches scored concurrently. Values below
// 1 use GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{batchSize: defaultBatchSize, parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
