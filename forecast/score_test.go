package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRMSE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  float64
		err       error
	}{
		"perfect": {
			predicted: []float64{1, 2, 3},
			actual:    []float64{1, 2, 3},
			expected:  0,
		},
		"known value": {
			predicted: []float64{2, 2},
			actual:    []float64{1, 3},
			expected:  1,
		},
		"skips nan pairs": {
			predicted: []float64{math.NaN(), 2},
			actual:    []float64{1, 3},
			expected:  1,
		},
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
		"nothing comparable": {
			predicted: []float64{math.NaN()},
			actual:    []float64{1},
			err:       ErrNoComparable,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := RMSE(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected, res, 1e-12)
			assert.GreaterOrEqual(t, res, 0.0)
		})
	}
}

func TestMAPE(t *testing.T) {
	testData := map[string]struct {
		predicted []float64
		actual    []float64
		expected  float64
		err       error
	}{
		"known value": {
			predicted: []float64{90, 110},
			actual:    []float64{100, 100},
			expected:  10,
		},
		"zero actuals excluded": {
			predicted: []float64{5, 90},
			actual:    []float64{0, 100},
			expected:  10,
		},
		"all actuals zero": {
			predicted: []float64{5, 6},
			actual:    []float64{0, 0},
			err:       ErrNoComparable,
		},
		"length mismatch": {
			predicted: []float64{1},
			actual:    []float64{1, 2},
			err:       ErrResLenMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res, err := MAPE(td.predicted, td.actual)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, td.expected, res, 1e-12)
			assert.GreaterOrEqual(t, res, 0.0)
		})
	}
}

func TestMASE(t *testing.T) {
	// training set with mean absolute one-step difference of 2
	scale, err := NaiveScale([]float64{1, 3, 5, 7})
	require.NoError(t, err)
	require.Equal(t, 2.0, scale)

	res, err := MASE([]float64{9, 12}, []float64{10, 10}, scale)
	require.NoError(t, err)
	// mean absolute error 1.5 scaled by 2
	assert.InDelta(t, 0.75, res, 1e-12)

	_, err = MASE([]float64{1}, []float64{1}, 0)
	assert.ErrorIs(t, err, ErrZeroScale)

	_, err = MASE([]float64{1}, []float64{1, 2}, scale)
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestNaiveScale(t *testing.T) {
	_, err := NaiveScale([]float64{1})
	assert.ErrorIs(t, err, ErrNoComparable)

	_, err = NaiveScale([]float64{4, 4, 4})
	assert.ErrorIs(t, err, ErrZeroScale)
}

func TestNewScores(t *testing.T) {
	scores, err := NewScores([]float64{2, 2}, []float64{1, 3}, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores.RMSE, 1e-12)
	assert.InDelta(t, (100.0+100.0/3.0)/2.0, scores.MAPE, 1e-12)
	assert.InDelta(t, 0.5, scores.MASE, 1e-12)

	// NaN scale leaves MASE undefined
	scores, err = NewScores([]float64{2, 2}, []float64{1, 3}, math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(scores.MASE))
}
