// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based row/column gathers (Induced) and column-wise joins (HStack),
//     the two primitives a tabular shuffle-and-partition needs.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c'); HStack: O(r*(c1+c2)).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxFrom   = "FromRows"
	ctxFromC  = "FromColumns"
	ctxHStack = "HStack"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isBad reports whether v violates the finite-only policy.
func isBad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set and ingestion.
type Dense struct {
	r, c           int       // row and column counts (>=0; zero allowed only via NewDenseZeroOK)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve numeric policy.
//
// Behavior highlights:
//   - Public strict constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//     Use NewDenseZeroOK where an empty block is a legal outcome.
//
// Errors:
//   - ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// NewDenseZeroOK creates an r×c zero matrix allowing rows==0 or cols==0.
// A 0×k matrix is the natural shape of an empty partition; negative
// dimensions still yield ErrInvalidDimensions.
// Complexity: O(r*c).
func NewDenseZeroOK(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDenseZeroOK(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// newDense allocates without validation; callers have checked the shape.
func newDense(rows, cols int, o Options) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}
}

// FromRows builds a Dense from row slices, copying the data.
//
// Implementation:
//   - Stage 1: derive shape from len(rows) and len(rows[0]); every row must match.
//   - Stage 2: copy into a flat buffer, enforcing the numeric policy.
//
// Behavior highlights:
//   - Empty input yields a legal 0×0 Dense.
//   - Ragged rows yield ErrDimensionMismatch with the offending row index.
//
// Errors:
//   - ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	if r == 0 {
		return newDense(0, 0, o), nil
	}
	c := len(rows[0])
	m := newDense(r, c, o)

	var i, j int
	for i = 0; i < r; i++ {
		if err := ValidateVecLen(rows[i], c); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFrom, i, err)
		}
		for j = 0; j < c; j++ {
			if o.validateNaNInf && isBad(rows[i][j]) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// FromColumns builds an n×k Dense from k column vectors of equal length n.
// A zero-length cols yields 0×0. Columns of unequal length fail with
// ErrDimensionMismatch.
// Complexity: O(n*k).
func FromColumns(cols [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	k := len(cols)
	if k == 0 {
		return newDense(0, 0, o), nil
	}
	n := len(cols[0])
	m := newDense(n, k, o)

	var i, j int
	for j = 0; j < k; j++ {
		if err := ValidateVecLen(cols[j], n); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", ctxFromC, j, err)
		}
		for i = 0; i < n; i++ {
			if o.validateNaNInf && isBad(cols[j][i]) {
				return nil, denseErrorf(ctxFromC, i, j, ErrNaNInf)
			}
			m.data[i*k+j] = cols[j][i]
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// ValidatesNaNInf reports the instance numeric policy.
func (m *Dense) ValidatesNaNInf() bool { return m.validateNaNInf }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if m.validateNaNInf && isBad(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders rows as lines with comma-separated values. Not for hot paths.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes the submatrix selected by rowsIdx × colsIdx (copy).
//
// Implementation:
//   - Stage 1: allocate len(rowsIdx)×len(colsIdx) with the base policy (zero area allowed).
//   - Stage 2: validate every index and gather with direct offset math.
//
// Behavior highlights:
//   - Indices may repeat and appear in any order; the output follows the
//     given order, which makes Induced a row permutation when rowsIdx is one.
//   - Values are copied, so the result has an independent lifetime.
//
// Errors:
//   - ErrOutOfRange with the offending index.
//
// Complexity:
//   - Time O(len(rowsIdx)*len(colsIdx)), Space the same.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	res := &Dense{
		r:              rp,
		c:              cp,
		data:           make([]float64, rp*cp),
		validateNaNInf: m.validateNaNInf, // preserve numeric policy from the base
	}

	// Column indices are checked once up-front; the row loop checks rows.
	var i, j int
	for j = 0; j < cp; j++ {
		if colsIdx[j] < 0 || colsIdx[j] >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, colsIdx[j], ErrOutOfRange)
		}
	}

	var ri, src, dst int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		src = ri * m.c
		dst = i * cp
		for j = 0; j < cp; j++ {
			res.data[dst+j] = m.data[src+colsIdx[j]]
		}
	}

	return res, nil
}

// SliceRows copies rows [lo, hi) into a new Dense (zero rows allowed).
// Complexity: O((hi-lo)*c).
func (m *Dense) SliceRows(lo, hi int) (*Dense, error) {
	if lo < 0 || hi > m.r || lo > hi {
		return nil, fmt.Errorf("Dense.SliceRows(%d,%d): %w", lo, hi, ErrOutOfRange)
	}
	out := &Dense{
		r:              hi - lo,
		c:              m.c,
		data:           make([]float64, (hi-lo)*m.c),
		validateNaNInf: m.validateNaNInf,
	}
	copy(out.data, m.data[lo*m.c:hi*m.c])

	return out, nil
}

// HStack concatenates a and b column-wise: result is r×(ca+cb), a's columns first.
//
// Implementation:
//   - Stage 1: ValidateNotNil both, ValidateSameRows.
//   - Stage 2: copy each row of a then each row of b into the new buffer.
//
// Behavior highlights:
//   - Result policy: strict if either operand is strict, so lenient data
//     never silently weakens a strict table.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space the same.
func HStack(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxHStack, err)
	}

	c := a.c + b.c
	out := &Dense{
		r:              a.r,
		c:              c,
		data:           make([]float64, a.r*c),
		validateNaNInf: a.validateNaNInf || b.validateNaNInf,
	}
	for i := 0; i < a.r; i++ {
		copy(out.data[i*c:i*c+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(out.data[i*c+a.c:(i+1)*c], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// Do iterates all elements in row-major order; f returning false stops early.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
