package timedataset

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthSeq(year int, month time.Month, n int) []time.Time {
	return GenerateMonths(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), n)
}

func TestNewMonthlyDataset(t *testing.T) {
	testData := map[string]struct {
		t        []time.Time
		y        []float64
		expected *TimeDataset
		err      error
	}{
		"no observations": {
			err: ErrNoData,
		},
		"length mismatch": {
			y:   []float64{1},
			err: ErrLenMismatch,
		},
		"non increasing time": {
			t: []time.Time{
				time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, 2},
			err: ErrNonMonotonic,
		},
		"month gap": {
			t: []time.Time{
				time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			y:   []float64{1, 2},
			err: ErrMonthGap,
		},
		"nan value": {
			t:   monthSeq(2020, 1, 2),
			y:   []float64{1, math.NaN()},
			err: ErrBadValue,
		},
		"negative value": {
			t:   monthSeq(2020, 1, 2),
			y:   []float64{1, -2},
			err: ErrNegativeValue,
		},
		"valid": {
			t: monthSeq(2020, 1, 2),
			y: []float64{1, 2},
			expected: &TimeDataset{
				T: monthSeq(2020, 1, 2),
				Y: []float64{1, 2},
			},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := NewMonthlyDataset(td.t, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, ds)
		})
	}
}

func TestDatasetImmutable(t *testing.T) {
	times := monthSeq(2020, 1, 3)
	y := []float64{1, 2, 3}
	ds, err := NewMonthlyDataset(times, y)
	require.NoError(t, err)

	y[0] = 99
	assert.Equal(t, 1.0, ds.Y[0])

	cp := ds.Copy()
	cp.Y[1] = 42
	assert.Equal(t, 2.0, ds.Y[1])
}

func TestDatasetAccessors(t *testing.T) {
	ds, err := NewMonthlyDataset(monthSeq(2020, 11, 3), []float64{5, 6, 7})
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, time.Date(2020, 11, 1, 0, 0, 0, 0, time.UTC), ds.StartTime())
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), ds.EndTime())

	ts, val := ds.At(1)
	assert.Equal(t, time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC), ts)
	assert.Equal(t, 6.0, val)
}

func TestHorizonTimes(t *testing.T) {
	ds, err := NewMonthlyDataset(monthSeq(2020, 11, 3), []float64{5, 6, 7})
	require.NoError(t, err)

	horizon := ds.HorizonTimes(3)
	expected := []time.Time{
		time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, expected, horizon)
}

func TestGenerateVisitorDataset(t *testing.T) {
	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	ds, err := GenerateVisitorDataset(start, 48, 0)
	require.NoError(t, err)
	require.Equal(t, 48, ds.Len())

	// noiseless generation is deterministic
	other, err := GenerateVisitorDataset(start, 48, 0)
	require.NoError(t, err)
	assert.Equal(t, ds, other)
}
