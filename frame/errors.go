// SPDX-License-Identifier: MIT
// Package: lvprep/frame
//
// errors.go — sentinel errors for the frame package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (column name, row counts).
//   • Matrix sentinels (matrix.ErrNaNInf, matrix.ErrOutOfRange, ...) pass
//     through unchanged inside the wrap chain.

package frame

import (
	"errors"
	"fmt"
)

// ErrNilFrame indicates that a nil *Frame or *Series was passed where a value is required.
var ErrNilFrame = errors.New("frame: nil table")

// ErrEmptyName indicates a column or series name that is the empty string
// where a name is required (joins, column lists).
var ErrEmptyName = errors.New("frame: empty name")

// ErrDuplicateColumn indicates that a column name occurs twice in one frame,
// either at construction or as the result of a join.
var ErrDuplicateColumn = errors.New("frame: duplicate column")

// ErrUnknownColumn indicates a lookup of a column name the frame does not have.
var ErrUnknownColumn = errors.New("frame: unknown column")

// ErrRowMismatch indicates row-aligned inputs with different sample counts
// (join, index labels, column vectors).
var ErrRowMismatch = errors.New("frame: row count mismatch")

// frameErrorf prefixes a wrapped error with the method context.
func frameErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
