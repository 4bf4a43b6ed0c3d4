// SPDX-License-Identifier: MIT

package split

import (
	"math"
	"strconv"
)

// Kind tells how a Size is expressed.
type Kind uint8

const (
	// KindUnset marks a size the caller did not provide.
	KindUnset Kind = iota
	// KindFraction is a share of all samples in [0,1].
	KindFraction
	// KindCount is an absolute number of samples in [0,n].
	KindCount
)

// String returns the lower-case kind name used in error messages and logs.
func (k Kind) String() string {
	switch k {
	case KindFraction:
		return "fraction"
	case KindCount:
		return "count"
	default:
		return "unset"
	}
}

// Size is a tagged union: unset, a fraction of the samples, or a sample count.
// The zero value is unset. An explicit zero (Fraction(0), Count(0)) is a real
// size and is not confused with "not provided".
type Size struct {
	kind  Kind
	frac  float64
	count uint64
}

// Fraction returns a fractional size. Range is checked at validation time.
func Fraction(f float64) Size { return Size{kind: KindFraction, frac: f} }

// Count returns an absolute size in samples.
func Count(n uint64) Size { return Size{kind: KindCount, count: n} }

// Kind returns the tag.
func (s Size) Kind() Kind { return s.kind }

// IsSet reports whether the size was provided.
func (s Size) IsSet() bool { return s.kind != KindUnset }

// Fraction returns the fractional value and whether s is a fraction.
func (s Size) Fraction() (float64, bool) { return s.frac, s.kind == KindFraction }

// Count returns the count value and whether s is a count.
func (s Size) Count() (uint64, bool) { return s.count, s.kind == KindCount }

// String renders the value ("0.25", "10") or "unset".
func (s Size) String() string {
	switch s.kind {
	case KindFraction:
		return strconv.FormatFloat(s.frac, 'g', -1, 64)
	case KindCount:
		return strconv.FormatUint(s.count, 10)
	default:
		return "unset"
	}
}

// inRange checks s against [0,1] for fractions and [0,n] for counts.
// NaN fails the fraction check.
func (s Size) inRange(n int) bool {
	switch s.kind {
	case KindFraction:
		return s.frac >= 0 && s.frac <= 1
	case KindCount:
		return s.count <= uint64(n)
	default:
		return false
	}
}

// complement returns the size that adds up with s to the whole: 1-f or n-c.
// s must be set and in range.
func (s Size) complement(n int) Size {
	if s.kind == KindFraction {
		return Fraction(1 - s.frac)
	}

	return Count(uint64(n) - s.count)
}

// cut converts a resolved test size into the number of leading rows that form
// the test block: ⌊f·n⌋ for fractions, the count itself otherwise.
func (s Size) cut(n int) int {
	if s.kind == KindFraction {
		return int(math.Floor(s.frac * float64(n)))
	}

	return int(s.count)
}
