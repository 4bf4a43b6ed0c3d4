package split_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvprep/frame"
	"github.com/katalvlaran/lvprep/split"
)

// TestApplySupervised writes the four feature/target outputs.
func TestApplySupervised(t *testing.T) {
	b := split.Bag{
		split.KeyX:           makeX(t, 10, 2),
		split.KeyY:           makeY(t, "label", 10),
		split.KeyTestSize:    0.3,
		split.KeyTrainSize:   0.7,
		split.KeyRandomState: 0,
	}

	out, err := split.Apply(b)
	require.NoError(t, err)
	require.Contains(t, out, split.KeyXTrain)
	require.Contains(t, out, split.KeyXTest)
	require.Contains(t, out, split.KeyYTrain)
	require.Contains(t, out, split.KeyYTest)
	require.NotContains(t, out, split.KeyTrain)
	require.NotContains(t, out, split.KeyTest)

	xTrain := out[split.KeyXTrain].(*frame.Frame)
	yTest := out[split.KeyYTest].(*frame.Series)
	require.Equal(t, 7, xTrain.NumRows())
	require.Equal(t, 3, yTest.Len())

	// Inputs stay in the bag.
	require.Contains(t, out, split.KeyX)
	require.Contains(t, out, split.KeyY)
}

// TestApplyMatchesTrainTestSplit: the bag form and the typed form agree.
func TestApplyMatchesTrainTestSplit(t *testing.T) {
	x := makeX(t, 20, 3)
	y := makeY(t, "y", 20)

	res, err := split.TrainTestSplit(split.Params{X: x, Y: y, TestSize: split.Count(5), RandomState: split.Seed(9)})
	require.NoError(t, err)

	b, err := split.Apply(split.Bag{
		split.KeyX: x, split.KeyY: y,
		split.KeyTestSize:    5,
		split.KeyRandomState: int64(9),
	})
	require.NoError(t, err)

	require.Equal(t, ids(t, res.XTest), ids(t, b[split.KeyXTest].(*frame.Frame)))
	require.Equal(t, res.YTrain.Values(), b[split.KeyYTrain].(*frame.Series).Values())
}

// TestApplyUnsupervised writes train/test only.
func TestApplyUnsupervised(t *testing.T) {
	b := split.Bag{split.KeyX: makeX(t, 5, 1), split.KeyTestSize: uint8(2)}

	_, err := split.Apply(b)
	require.NoError(t, err)
	require.Equal(t, 2, b[split.KeyTest].(*frame.Frame).NumRows())
	require.Equal(t, 3, b[split.KeyTrain].(*frame.Frame).NumRows())
	require.NotContains(t, b, split.KeyXTrain)
	require.NotContains(t, b, split.KeyYTest)
}

// TestApplySizeValues accepts Size values and nil alongside plain numbers.
func TestApplySizeValues(t *testing.T) {
	b := split.Bag{split.KeyX: makeX(t, 10, 1), split.KeyTestSize: split.Fraction(0.5), split.KeyTrainSize: nil}
	_, err := split.Apply(b)
	require.NoError(t, err)
	require.Equal(t, 5, b[split.KeyTest].(*frame.Frame).NumRows())
}

// TestApplyRejections: kind errors at decode time, range errors at validation;
// the bag never receives outputs.
func TestApplyRejections(t *testing.T) {
	tests := []struct {
		name string
		bag  split.Bag
		want error
	}{
		{"no X", split.Bag{}, split.ErrMissingInput},
		{"nil X", split.Bag{split.KeyX: nil}, split.ErrMissingInput},
		{"typed nil X", split.Bag{split.KeyX: (*frame.Frame)(nil)}, split.ErrMissingInput},
		{"X not a frame", split.Bag{split.KeyX: [][]float64{{1}}}, split.ErrTypeMismatch},
		{"y not a series", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyY: []float64{1, 2, 3}}, split.ErrTypeMismatch},
		{"size is a string", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyTestSize: "0.2"}, split.ErrTypeMismatch},
		{"negative count", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyTrainSize: -1}, split.ErrValueRange},
		{"float seed", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyRandomState: 1.5}, split.ErrTypeMismatch},
		{"nil seed", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyRandomState: nil}, split.ErrTypeMismatch},
		{"seed overflow", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyRandomState: uint64(1) << 63}, split.ErrValueRange},
		{"mixed kinds", split.Bag{split.KeyX: makeX(t, 4, 1), split.KeyTestSize: 0.5, split.KeyTrainSize: 2}, split.ErrTypeMismatch},
		{"unnamed y", split.Bag{split.KeyX: makeX(t, 3, 1), split.KeyY: makeY(t, "", 3)}, split.ErrMissingName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := len(tc.bag)
			out, err := split.Apply(tc.bag)
			require.ErrorIs(t, err, tc.want)
			require.Len(t, out, before)
			require.NotContains(t, out, split.KeyTrain)
			require.NotContains(t, out, split.KeyXTrain)
		})
	}
}

// TestConfigureBagIsAtomic: a bad key leaves every field unchanged.
func TestConfigureBagIsAtomic(t *testing.T) {
	s := split.New()
	s.Configure(split.Params{X: makeX(t, 10, 1), TestSize: split.Count(4)})

	err := s.ConfigureBag(split.Bag{split.KeyTestSize: 2, split.KeyRandomState: "seven"})
	require.ErrorIs(t, err, split.ErrTypeMismatch)

	res, err := s.Split()
	require.NoError(t, err)
	require.Equal(t, 4, res.Test.NumRows())
	require.Equal(t, split.DefaultRandomState, res.RandomState)
}

// TestApplyIsStateful: a reused Splitter keeps inputs that later bags omit.
func TestApplyIsStateful(t *testing.T) {
	s := split.New()
	_, err := s.Apply(split.Bag{split.KeyX: makeX(t, 10, 1), split.KeyRandomState: 3})
	require.NoError(t, err)

	b, err := s.Apply(split.Bag{split.KeyTestSize: 6})
	require.NoError(t, err)
	require.Equal(t, 6, b[split.KeyTest].(*frame.Frame).NumRows())
	require.NotContains(t, b, split.KeyX)

	// nil clears y.
	_, err = s.Apply(split.Bag{split.KeyY: makeY(t, "y", 10)})
	require.NoError(t, err)
	b, err = s.Apply(split.Bag{split.KeyY: nil})
	require.NoError(t, err)
	require.Contains(t, b, split.KeyTrain)
}
