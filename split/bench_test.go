package split_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvprep/frame"
	"github.com/katalvlaran/lvprep/split"
)

// benchInputs builds an n×k frame of seeded noise and a matching target.
func benchInputs(b *testing.B, n, k int) (*frame.Frame, *frame.Series) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	cols := make([]string, k)
	for j := range cols {
		cols[j] = string(rune('a' + j))
	}
	rows := make([][]float64, n)
	labels := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, k)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()
		}
		labels[i] = float64(rng.Intn(2))
	}
	x, err := frame.New(cols, rows)
	if err != nil {
		b.Fatalf("setup frame.New failed: %v", err)
	}
	y, err := frame.NewSeries("target", labels)
	if err != nil {
		b.Fatalf("setup frame.NewSeries failed: %v", err)
	}

	return x, y
}

// BenchmarkTrainTestSplitSupervised measures join + shuffle + separate on
// 10 000 samples × 16 features.
// Complexity: O(n·c)
func BenchmarkTrainTestSplitSupervised(b *testing.B) {
	x, y := benchInputs(b, 10000, 16)
	p := split.Params{X: x, Y: y, TestSize: split.Fraction(0.25), RandomState: split.Seed(1)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := split.TrainTestSplit(p); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTrainTestSplitUnsupervised measures shuffle + slice only.
func BenchmarkTrainTestSplitUnsupervised(b *testing.B) {
	x, _ := benchInputs(b, 10000, 16)
	p := split.Params{X: x, RandomState: split.Seed(1)}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := split.TrainTestSplit(p); err != nil {
			b.Fatal(err)
		}
	}
}
