package split

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeZeroValue(t *testing.T) {
	var s Size
	require.False(t, s.IsSet())
	require.Equal(t, KindUnset, s.Kind())
	require.Equal(t, "unset", s.String())
	require.False(t, s.inRange(10))

	require.True(t, Fraction(0).IsSet())
	require.True(t, Count(0).IsSet())
}

func TestSizeAccessors(t *testing.T) {
	f, ok := Fraction(0.25).Fraction()
	require.True(t, ok)
	require.Equal(t, 0.25, f)
	_, ok = Fraction(0.25).Count()
	require.False(t, ok)

	c, ok := Count(7).Count()
	require.True(t, ok)
	require.Equal(t, uint64(7), c)
	_, ok = Count(7).Fraction()
	require.False(t, ok)

	require.Equal(t, "0.25", Fraction(0.25).String())
	require.Equal(t, "7", Count(7).String())
	require.Equal(t, "fraction", KindFraction.String())
	require.Equal(t, "count", KindCount.String())
}

func TestSizeInRange(t *testing.T) {
	require.True(t, Fraction(0).inRange(0))
	require.True(t, Fraction(1).inRange(0))
	require.False(t, Fraction(1.0001).inRange(10))
	require.False(t, Fraction(-0.0001).inRange(10))
	require.False(t, Fraction(math.NaN()).inRange(10))
	require.False(t, Fraction(math.Inf(1)).inRange(10))

	require.True(t, Count(10).inRange(10))
	require.False(t, Count(11).inRange(10))
	require.True(t, Count(0).inRange(0))
}

func TestSizeComplementAndCut(t *testing.T) {
	g, _ := Fraction(0.3).complement(10).Fraction()
	require.InDelta(t, 0.7, g, 1e-12)
	c, _ := Count(10).complement(100).Count()
	require.Equal(t, uint64(90), c)

	require.Equal(t, 3, Fraction(0.3).cut(10))
	require.Equal(t, 2, Fraction(0.25).cut(10))
	require.Equal(t, 0, Fraction(0.09).cut(10))
	require.Equal(t, 10, Fraction(1).cut(10))
	require.Equal(t, 4, Count(4).cut(10))
}

func TestHeuristicSizer(t *testing.T) {
	require.Equal(t, DefaultTestFraction, HeuristicSizer(100, false))
	require.InDelta(t, 0.5, HeuristicSizer(4, true), 1e-12)
	require.Equal(t, 1.0, HeuristicSizer(1, true))
	require.True(t, math.IsInf(HeuristicSizer(0, true), 1))
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig(nil)
	require.NotNil(t, cfg.logger)
	require.NotNil(t, cfg.sizer)
	require.Equal(t, DefaultEpsilon, cfg.eps)

	cfg = newConfig(WithEpsilon(1e-3), WithEpsilon(1e-6))
	require.Equal(t, 1e-6, cfg.eps)
}
