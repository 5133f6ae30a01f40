package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"blendfolio/types"
)

func TestCorrelationPerfectInverse(t *testing.T) {
	// B's returns are the exact negation of A's.
	a := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 110, "2021-01-06": 104.5, "2021-01-07": 125.4,
	})
	b := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 90, "2021-01-06": 94.5, "2021-01-07": 75.6,
	})

	got, err := Correlation(a, b)
	require.NoError(t, err)
	require.InDelta(t, -1, got, 1e-12)
}

func TestCorrelationSymmetry(t *testing.T) {
	a := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 104, "2021-01-06": 99, "2021-01-08": 108,
	})
	b := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 50, "2021-01-05": 51, "2021-01-06": 53, "2021-01-08": 50,
	})

	ab, err := Correlation(a, b)
	require.NoError(t, err)
	ba, err := Correlation(b, a)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestCorrelationSelf(t *testing.T) {
	a := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 104, "2021-01-06": 99,
	})
	got, err := Correlation(a, a)
	require.NoError(t, err)
	require.InDelta(t, 1, got, 1e-12)
}

func TestCorrelationRestrictsToOverlap(t *testing.T) {
	// Only 3 dates overlap; A's extra history must not leak in.
	a := types.NewTimeSeries(map[types.Day]float64{
		"2020-06-01": 70, "2021-01-04": 100, "2021-01-05": 110, "2021-01-06": 99, "2021-06-01": 180,
	})
	b := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 10, "2021-01-05": 11, "2021-01-06": 9.9,
	})
	aligned := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 110, "2021-01-06": 99,
	})

	got, err := Correlation(a, b)
	require.NoError(t, err)
	want, err := Correlation(aligned, b)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func TestCorrelationInsufficientOverlap(t *testing.T) {
	a := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 104, "2021-01-06": 99,
	})
	disjoint := types.NewTimeSeries(map[types.Day]float64{
		"2022-01-04": 100, "2022-01-05": 101,
	})
	oneCommon := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2022-05-05": 101,
	})

	_, err := Correlation(a, disjoint)
	require.ErrorIs(t, err, ErrInsufficientOverlap)
	_, err = Correlation(a, oneCommon)
	require.ErrorIs(t, err, ErrInsufficientOverlap)
}

func TestCorrelationSkipsNonPositivePriors(t *testing.T) {
	// A zero prior value invalidates its return pair; here only one valid
	// pair survives.
	a := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 0, "2021-01-05": 99, "2021-01-06": 104,
	})
	b := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 50, "2021-01-05": 51, "2021-01-06": 53,
	})
	_, err := Correlation(a, b)
	require.ErrorIs(t, err, ErrInsufficientOverlap)
}

func TestCorrelationConstantSeriesIsZero(t *testing.T) {
	// Degenerate constant returns: the denominator is exactly 0 and the
	// result is 0, not a failure.
	flat := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 100, "2021-01-06": 100,
	})
	moving := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 50, "2021-01-05": 51, "2021-01-06": 49,
	})
	got, err := Correlation(flat, moving)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestCorrelationMatrix(t *testing.T) {
	a := &types.Strategy{ID: "a", Series: types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 110, "2021-01-06": 104.5,
	})}
	b := &types.Strategy{ID: "b", Series: types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100, "2021-01-05": 90, "2021-01-06": 94.5,
	})}
	lonely := &types.Strategy{ID: "c", Series: types.NewTimeSeries(map[types.Day]float64{
		"1999-01-04": 10, "1999-01-05": 11,
	})}

	m, ids := CorrelationMatrix([]*types.Strategy{a, b, lonely})
	require.Equal(t, []string{"a", "b", "c"}, ids)
	require.Equal(t, 3, m.SymmetricDim())

	require.InDelta(t, 1, m.At(0, 0), 1e-12)
	require.InDelta(t, -1, m.At(0, 1), 1e-12)
	require.Equal(t, m.At(0, 1), m.At(1, 0))
	require.True(t, math.IsNaN(m.At(0, 2)), "no overlap -> NaN")
	require.True(t, math.IsNaN(m.At(2, 2)), "2 samples give only 1 return pair -> NaN")
}

func TestCorrelationMatrixEmpty(t *testing.T) {
	m, ids := CorrelationMatrix(nil)
	require.Nil(t, m)
	require.Nil(t, ids)
}
