// SPDX-License-Identifier: MIT
// Package: lvprep/split
//
// errors.go — sentinel errors for the split package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every failure is detected before any shuffling happens; no partial
//     result is ever returned or written into a Bag.
//   • Option constructors panic on meaningless values (WithLogger(nil), ...);
//     Configure/Validate/Split never panic.
//
// Priority (when several inputs are wrong at once, the first wins):
//   ErrMissingInput → ErrShapeMismatch → ErrTypeMismatch (sizes) →
//   ErrValueRange → ErrMissingName.

package split

import (
	"errors"
	"fmt"
)

// ErrMissingInput indicates that the required feature table X is absent.
var ErrMissingInput = errors.New("split: missing input")

// ErrTypeMismatch indicates a value of the wrong kind: a non-table under X,
// a non-series under y, a non-numeric size, sizes of different kinds
// (fraction vs count), or a non-integer random_state.
var ErrTypeMismatch = errors.New("split: type mismatch")

// ErrShapeMismatch indicates that the target does not line up with the
// feature table: different sample counts, or a target name that already
// names a feature column.
var ErrShapeMismatch = errors.New("split: shape mismatch")

// ErrValueRange indicates a size outside [0,1] (fraction) or [0,n] (count),
// explicit sizes that do not add up to 1 or n, or a default heuristic that
// produced an unusable fraction.
var ErrValueRange = errors.New("split: value out of range")

// ErrMissingName indicates that the target series has no name, so it cannot
// be separated from the feature columns after the join.
var ErrMissingName = errors.New("split: target has no name")

// fieldErrorf wraps a sentinel with the offending field and a detail message.
// The result reads "<field>: <detail>: split: <kind>".
func fieldErrorf(field string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", field, fmt.Sprintf(format, args...), sentinel)
}
