// SPDX-License-Identifier: MIT

// Package frame provides the tabular inputs and outputs of lvprep.
//
// The frame package provides:
//
//   - Frame: samples×features, named columns, integer row labels, backed by a
//     row-major matrix.Dense. Immutable; every reshaping step returns a copy
//     (or shares storage where that is indistinguishable).
//   - Series: a named 1-D vector aligned with a Frame, typically the target.
//   - NumSamples: the row count of any Sampled value, nil-safe.
//
// Numeric policy: NaN and ±Inf are accepted by default (missing values are
// common in raw datasets). WithStrictNumbers rejects them at construction.
//
// Errors are package sentinels (ErrUnknownColumn, ErrDuplicateColumn, ...);
// matrix sentinels pass through the wrap chain unchanged.
package frame
