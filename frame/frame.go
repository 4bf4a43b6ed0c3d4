// SPDX-License-Identifier: MIT

// Package frame - feature tables over matrix.Dense.
//
// Purpose:
//   - Give samples×features data a name per column and a label per row.
//   - Offer exactly the reshaping steps a shuffle-and-partition needs:
//     column-wise join (Join), row gather (Take), contiguous block (Slice),
//     label reset (ResetIndex), column removal (Drop) and extraction (Column).
//
// Frames are immutable: every operation returns a new Frame, so a Frame can
// be shared freely between the caller and the results derived from it.
//
// Complexity quicksheet:
//   - New/FromColumns: O(r*c); Take/Slice/Drop/Join: O(r'*c'); Column: O(r).

package frame

import (
	"fmt"

	"github.com/katalvlaran/lvprep/matrix"
)

// Frame is an immutable table: named columns, labelled rows, float64 cells.
type Frame struct {
	columns []string       // column names, unique and non-empty
	pos     map[string]int // name -> column position
	index   []int          // row labels, len == data.Rows()
	data    *matrix.Dense  // row-major storage, r×len(columns)
}

// New builds a Frame from row-major data.
//
// Implementation:
//   - Stage 1: validate column names (non-empty, unique).
//   - Stage 2: ingest rows through matrix.FromRows under the numeric policy.
//   - Stage 3: check every row width against len(columns); attach labels.
//
// Behavior highlights:
//   - Zero rows are legal: New(cols, nil) is an empty table with a schema.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateColumn, matrix.ErrDimensionMismatch,
//     matrix.ErrNaNInf, ErrRowMismatch (WithIndex).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(columns []string, rows [][]float64, opts ...Option) (*Frame, error) {
	cfg := newConfig(opts...)
	pos, err := indexColumns("New", columns)
	if err != nil {
		return nil, err
	}

	var data *matrix.Dense
	if len(rows) == 0 {
		data, err = matrix.NewDenseZeroOK(0, len(columns), cfg.matrixOptions()...)
	} else {
		data, err = matrix.FromRows(rows, cfg.matrixOptions()...)
	}
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if data.Cols() != len(columns) {
		return nil, frameErrorf("New", "%d columns named, rows have %d values: %w",
			len(columns), data.Cols(), matrix.ErrDimensionMismatch)
	}

	idx, err := cfg.resolveIndex("New", data.Rows())
	if err != nil {
		return nil, err
	}

	return &Frame{columns: append([]string(nil), columns...), pos: pos, index: idx, data: data}, nil
}

// FromColumns builds a Frame from one value slice per column.
// All slices must share a length; zero columns yield an empty 0×0 frame.
func FromColumns(columns []string, values [][]float64, opts ...Option) (*Frame, error) {
	cfg := newConfig(opts...)
	pos, err := indexColumns("FromColumns", columns)
	if err != nil {
		return nil, err
	}
	if len(values) != len(columns) {
		return nil, frameErrorf("FromColumns", "%d columns named, %d given: %w",
			len(columns), len(values), matrix.ErrDimensionMismatch)
	}
	data, err := matrix.FromColumns(values, cfg.matrixOptions()...)
	if err != nil {
		return nil, fmt.Errorf("FromColumns: %w", err)
	}
	idx, err := cfg.resolveIndex("FromColumns", data.Rows())
	if err != nil {
		return nil, err
	}

	return &Frame{columns: append([]string(nil), columns...), pos: pos, index: idx, data: data}, nil
}

// indexColumns validates names and builds the lookup map.
func indexColumns(method string, columns []string) (map[string]int, error) {
	pos := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, frameErrorf(method, "column %d: %w", i, ErrEmptyName)
		}
		if _, dup := pos[name]; dup {
			return nil, frameErrorf(method, "column %q: %w", name, ErrDuplicateColumn)
		}
		pos[name] = i
	}

	return pos, nil
}

// derive wraps new storage with the given schema and labels.
func (f *Frame) derive(columns []string, index []int, data *matrix.Dense) *Frame {
	pos := make(map[string]int, len(columns))
	for i, name := range columns {
		pos[name] = i
	}

	return &Frame{columns: columns, pos: pos, index: index, data: data}
}

// NumRows returns the number of samples; a nil Frame has none.
// Complexity: O(1).
func (f *Frame) NumRows() int {
	if f == nil {
		return 0
	}

	return f.data.Rows()
}

// NumCols returns the number of feature columns.
func (f *Frame) NumCols() int { return len(f.columns) }

// Shape returns (rows, columns).
func (f *Frame) Shape() (rows, cols int) { return f.NumRows(), f.NumCols() }

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

// HasColumn reports whether name is one of the frame's columns.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.pos[name]
	return ok
}

// Index returns a copy of the row labels.
func (f *Frame) Index() []int { return append([]int(nil), f.index...) }

// Matrix returns a copy of the underlying storage.
func (f *Frame) Matrix() *matrix.Dense { return f.data.Clone() }

// Row returns a copy of the i-th row (by position).
func (f *Frame) Row(i int) ([]float64, error) {
	row, err := f.data.Row(i)
	if err != nil {
		return nil, fmt.Errorf("Frame.Row: %w", err)
	}

	return row, nil
}

// At returns the value at row position i of the named column.
func (f *Frame) At(i int, column string) (float64, error) {
	j, ok := f.pos[column]
	if !ok {
		return 0, frameErrorf("Frame.At", "%q: %w", column, ErrUnknownColumn)
	}
	v, err := f.data.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("Frame.At: %w", err)
	}

	return v, nil
}

// Column extracts the named column as a Series carrying the frame's labels.
// Complexity: O(r).
func (f *Frame) Column(name string) (*Series, error) {
	j, ok := f.pos[name]
	if !ok {
		return nil, frameErrorf("Frame.Column", "%q: %w", name, ErrUnknownColumn)
	}
	values, err := f.data.Col(j)
	if err != nil {
		return nil, fmt.Errorf("Frame.Column: %w", err)
	}

	return &Series{name: name, values: values, index: f.Index()}, nil
}

// allColumns returns 0..c-1 for full-width gathers.
func (f *Frame) allColumns() []int { return rangeIndex(len(f.columns)) }

// Take gathers rows by position, in the given order, keeping their labels.
//
// Implementation:
//   - Stage 1: matrix.Induced(rows, all columns); validates every position.
//   - Stage 2: carry the source label of each gathered row.
//
// Behavior highlights:
//   - With a permutation of 0..n-1 this is a shuffle; ResetIndex afterwards
//     yields fresh 0..n-1 labels.
//
// Errors:
//   - matrix.ErrOutOfRange.
//
// Complexity:
//   - Time O(len(rows)*c).
func (f *Frame) Take(rows []int) (*Frame, error) {
	data, err := f.data.Induced(rows, f.allColumns())
	if err != nil {
		return nil, fmt.Errorf("Frame.Take: %w", err)
	}
	idx := make([]int, len(rows))
	for i, r := range rows {
		idx[i] = f.index[r] // bounds already checked by Induced
	}

	return f.derive(f.Columns(), idx, data), nil
}

// Slice returns rows [lo, hi) by position, keeping their labels.
// Complexity: O((hi-lo)*c).
func (f *Frame) Slice(lo, hi int) (*Frame, error) {
	data, err := f.data.SliceRows(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("Frame.Slice: %w", err)
	}

	return f.derive(f.Columns(), append([]int(nil), f.index[lo:hi]...), data), nil
}

// ResetIndex returns the same table labelled 0..n-1. Storage is shared;
// frames are immutable so sharing is safe.
func (f *Frame) ResetIndex() *Frame {
	return f.derive(f.Columns(), rangeIndex(f.NumRows()), f.data)
}

// Drop returns a frame without the named columns.
// Every name must exist; otherwise ErrUnknownColumn.
// Complexity: O(r*c).
func (f *Frame) Drop(names ...string) (*Frame, error) {
	skip := make(map[string]struct{}, len(names))
	for _, name := range names {
		if !f.HasColumn(name) {
			return nil, frameErrorf("Frame.Drop", "%q: %w", name, ErrUnknownColumn)
		}
		skip[name] = struct{}{}
	}

	keepIdx := make([]int, 0, len(f.columns)-len(skip))
	keepNames := make([]string, 0, len(f.columns)-len(skip))
	for j, name := range f.columns {
		if _, drop := skip[name]; drop {
			continue
		}
		keepIdx = append(keepIdx, j)
		keepNames = append(keepNames, name)
	}

	data, err := f.data.Induced(rangeIndex(f.NumRows()), keepIdx)
	if err != nil {
		return nil, fmt.Errorf("Frame.Drop: %w", err)
	}

	return f.derive(keepNames, f.Index(), data), nil
}

// Join appends s as a trailing column named s.Name().
//
// Implementation:
//   - Stage 1: guard nil, empty name, name collision and row count.
//   - Stage 2: matrix.HStack(frame data, s as a single column).
//
// Behavior highlights:
//   - Alignment is positional: row i of s joins row i of f. The frame's
//     labels are kept.
//
// Errors:
//   - ErrNilFrame, ErrEmptyName, ErrDuplicateColumn, ErrRowMismatch.
//
// Complexity:
//   - Time O(r*(c+1)).
func (f *Frame) Join(s *Series) (*Frame, error) {
	if s == nil {
		return nil, frameErrorf("Frame.Join", "series: %w", ErrNilFrame)
	}
	if s.name == "" {
		return nil, frameErrorf("Frame.Join", "series: %w", ErrEmptyName)
	}
	if f.HasColumn(s.name) {
		return nil, frameErrorf("Frame.Join", "%q: %w", s.name, ErrDuplicateColumn)
	}
	if s.NumRows() != f.NumRows() {
		return nil, frameErrorf("Frame.Join", "series has %d rows, frame has %d: %w",
			s.NumRows(), f.NumRows(), ErrRowMismatch)
	}

	// The series was validated when built; HStack keeps the frame's policy.
	col, err := matrix.FromColumns([][]float64{s.values}, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("Frame.Join: %w", err)
	}
	data, err := matrix.HStack(f.data, col)
	if err != nil {
		return nil, fmt.Errorf("Frame.Join: %w", err)
	}

	return f.derive(append(f.Columns(), s.name), f.Index(), data), nil
}
