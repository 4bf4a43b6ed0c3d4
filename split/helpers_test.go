// SPDX-License-Identifier: MIT
// Package split_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures whose values identify their
//     original row, so coverage and alignment can be checked after a shuffle.

package split_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/lvprep/frame"
	"github.com/stretchr/testify/require"
)

// idColumn is the feature column holding the original row position.
const idColumn = "f0"

// targetOffset separates target values from row ids: y[i] = targetOffset + i.
const targetOffset = 1000.0

// makeX builds an n×k frame with columns f0..f{k-1}; cell (i,j) = i + 100*j,
// so column f0 holds the original row position.
func makeX(t testing.TB, n, k int) *frame.Frame {
	t.Helper()
	cols := make([]string, k)
	for j := range cols {
		cols[j] = fmt.Sprintf("f%d", j)
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, k)
		for j := range rows[i] {
			rows[i][j] = float64(i + 100*j)
		}
	}
	f, err := frame.New(cols, rows)
	require.NoError(t, err)

	return f
}

// makeY builds a target named name with y[i] = targetOffset + i.
func makeY(t testing.TB, name string, n int) *frame.Series {
	t.Helper()
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = targetOffset + float64(i)
	}
	s, err := frame.NewSeries(name, vals)
	require.NoError(t, err)

	return s
}

// ids returns the original row positions held in the f0 column of f.
func ids(t testing.TB, f *frame.Frame) []int {
	t.Helper()
	col, err := f.Column(idColumn)
	require.NoError(t, err)
	out := make([]int, 0, col.Len())
	for _, v := range col.Values() {
		out = append(out, int(v))
	}

	return out
}

// rangeOf returns 0..n-1.
func rangeOf(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// requireCover asserts that a and b are disjoint and together hold 0..n-1.
func requireCover(t testing.TB, n int, a, b []int) {
	t.Helper()
	all := append(append([]int(nil), a...), b...)
	if n == 0 {
		require.Empty(t, all)
		return
	}
	sort.Ints(all)
	require.Equal(t, rangeOf(n), all)
}
