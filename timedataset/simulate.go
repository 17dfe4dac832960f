package timedataset

import (
	"math"
	"math/rand/v2"
	"time"
)

// GenerateMonths produces n consecutive month starts beginning at start.
func GenerateMonths(start time.Time, n int) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, first.AddDate(0, i, 0))
	}
	return t
}

type Series []float64

func (s Series) Add(src Series) Series {
	for i := range s {
		s[i] += src[i]
	}
	return s
}

// GenerateConstY produces a constant series of length n.
func GenerateConstY(n int, val float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = val
	}
	return Series(y)
}

// GenerateTrendY produces a linear trend evaluated at each month index.
func GenerateTrendY(n int, bias, slope float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = bias + slope*float64(i)
	}
	return Series(y)
}

// GenerateSeasonalY produces a yearly sine wave sampled monthly.
func GenerateSeasonalY(n int, amp float64, order float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = amp * math.Sin(2.0*math.Pi*order*float64(i)/float64(Frequency))
	}
	return Series(y)
}

// GenerateNoise produces gaussian noise with the given scale.
func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = rand.NormFloat64() * scale
	}
	return Series(y)
}

// GenerateVisitorDataset builds a synthetic monthly visitor series with a
// yearly seasonal swing on top of a rising trend. noiseScale of 0 gives a
// fully deterministic series.
func GenerateVisitorDataset(start time.Time, n int, noiseScale float64) (*TimeDataset, error) {
	t := GenerateMonths(start, n)
	y := GenerateConstY(n, 1200.0).
		Add(GenerateTrendY(n, 0.0, 8.0)).
		Add(GenerateSeasonalY(n, 300.0, 1.0))
	if noiseScale > 0 {
		y = y.Add(GenerateNoise(n, noiseScale))
	}
	for i := range y {
		if y[i] < 0 {
			y[i] = 0
		}
	}
	return NewMonthlyDataset(t, y)
}
