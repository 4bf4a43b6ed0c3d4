// SPDX-License-Identifier: MIT

package frame

import "github.com/katalvlaran/lvprep/matrix"

// Option customizes frame and series construction.
type Option func(*config)

// config holds construction knobs; resolved by newConfig.
type config struct {
	strict bool  // reject NaN/±Inf values
	index  []int // explicit row labels; nil means 0..n-1
}

// WithStrictNumbers rejects NaN and ±Inf at construction time.
// The default accepts them, since NaN is the usual encoding of a missing value.
func WithStrictNumbers() Option {
	return func(c *config) { c.strict = true }
}

// WithIndex assigns explicit row labels. The slice is copied; its length must
// equal the number of rows or construction fails with ErrRowMismatch.
func WithIndex(labels []int) Option {
	cp := append([]int(nil), labels...)
	return func(c *config) { c.index = cp }
}

// newConfig applies options in order (last wins).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// matrixOptions maps the frame policy onto the matrix numeric policy.
func (c config) matrixOptions() []matrix.Option {
	if c.strict {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithNoValidateNaNInf()}
}

// resolveIndex returns the configured labels or a fresh 0..n-1 range.
func (c config) resolveIndex(method string, n int) ([]int, error) {
	if c.index == nil {
		return rangeIndex(n), nil
	}
	if len(c.index) != n {
		return nil, frameErrorf(method, "index has %d labels for %d rows: %w", len(c.index), n, ErrRowMismatch)
	}

	return append([]int(nil), c.index...), nil
}

// rangeIndex builds the labels 0..n-1.
func rangeIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
