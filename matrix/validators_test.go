package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvprep/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidators exercises each validator's accept and reject branch.
func TestValidators(t *testing.T) {
	a, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 1)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameRows(a, a))
	require.ErrorIs(t, matrix.ValidateSameRows(a, b), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.Inf(1)}), matrix.ErrNaNInf)
}

// TestOptionsResolution verifies defaults and last-writer-wins.
func TestOptionsResolution(t *testing.T) {
	require.Equal(t, matrix.DefaultValidateNaNInf, matrix.NewMatrixOptions().ValidatesNaNInf())

	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidatesNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), nil, matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidatesNaNInf())
}
