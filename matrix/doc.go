// SPDX-License-Identifier: MIT

// Package matrix provides the row-major float64 storage behind lvprep tables.
//
// The matrix package provides:
//
//   - Dense: a flat, cache-friendly buffer with bounds-checked At/Set.
//   - Gathers: Induced (arbitrary row/column selection, copy) and SliceRows
//     (contiguous block, copy), used to permute and partition
//     samples.
//   - HStack for column-wise joins of row-aligned matrices.
//   - A per-instance numeric policy (reject NaN/±Inf or not) configured through
//     functional options and preserved by every derived matrix.
//
// Errors are package sentinels (see errors.go); match them with errors.Is.
package matrix
