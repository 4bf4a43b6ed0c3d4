// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"

	"github.com/katalvlaran/lvprep/matrix"
)

// Series is a named one-dimensional float64 vector with row labels.
// It is immutable after construction: accessors return copies.
type Series struct {
	name   string
	values []float64
	index  []int
}

// NewSeries copies values into a new Series.
// The name may be empty; consumers that need it (joins, target separation)
// reject an unnamed series themselves.
//
// Errors:
//   - matrix.ErrNaNInf under WithStrictNumbers.
//   - ErrRowMismatch when WithIndex has the wrong length.
//
// Complexity: O(n).
func NewSeries(name string, values []float64, opts ...Option) (*Series, error) {
	cfg := newConfig(opts...)
	if cfg.strict {
		if err := matrix.ValidateFinite(values); err != nil {
			return nil, fmt.Errorf("NewSeries(%q): %w", name, err)
		}
	}
	idx, err := cfg.resolveIndex("NewSeries", len(values))
	if err != nil {
		return nil, err
	}

	return &Series{
		name:   name,
		values: append([]float64(nil), values...),
		index:  idx,
	}, nil
}

// Name returns the series name ("" when unnamed).
func (s *Series) Name() string { return s.name }

// Len returns the number of values.
func (s *Series) Len() int { return s.NumRows() }

// NumRows returns the number of samples; a nil Series has none.
func (s *Series) NumRows() int {
	if s == nil {
		return 0
	}

	return len(s.values)
}

// Values returns a copy of the data.
func (s *Series) Values() []float64 { return append([]float64(nil), s.values...) }

// Index returns a copy of the row labels.
func (s *Series) Index() []int { return append([]int(nil), s.index...) }

// At returns the i-th value by position.
func (s *Series) At(i int) (float64, error) {
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("Series.At(%d): %w", i, matrix.ErrOutOfRange)
	}

	return s.values[i], nil
}

// Rename returns a copy of s under a new name.
func (s *Series) Rename(name string) *Series {
	return &Series{name: name, values: s.Values(), index: s.Index()}
}

// ResetIndex returns a copy of s labelled 0..n-1.
func (s *Series) ResetIndex() *Series {
	return &Series{name: s.name, values: s.Values(), index: rangeIndex(len(s.values))}
}
