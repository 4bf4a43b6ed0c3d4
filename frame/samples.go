// SPDX-License-Identifier: MIT

package frame

// Sampled is anything with a sample (row) count: *Frame and *Series.
type Sampled interface {
	NumRows() int
}

// Compile-time assertions.
var (
	_ Sampled = (*Frame)(nil)
	_ Sampled = (*Series)(nil)
)

// NumSamples returns the number of samples in t. It never fails: a nil
// interface or a nil *Frame/*Series counts as zero samples.
// Complexity: O(1).
func NumSamples(t Sampled) int {
	if t == nil {
		return 0
	}

	return t.NumRows()
}
