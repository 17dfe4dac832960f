// Package models is a collection of univariate forecasting model
// implementations sharing one adapter interface so the evaluator and the
// forecast session stay algorithm-agnostic.
package models

import (
	"math"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/timedataset"
)

// Model is the uniform contract across forecasting algorithms. Fit captures
// the series and estimates parameters; Forecast extends the fitted series'
// monthly calendar. A fitted model is immutable and safe for concurrent
// Forecast calls.
type Model interface {
	Name() string
	Fit(td *timedataset.TimeDataset) error
	Fitted() []float64
	Forecast(horizon int) (*forecast.Result, error)
}

// Factory produces a fresh unfitted model instance.
type Factory func() Model

// DefaultFactories returns the benchmark's model set in its canonical order.
func DefaultFactories() []Factory {
	return []Factory{
		func() Model { return NewARIMA(nil) },
		func() Model { return NewETS(nil) },
		func() Model { return NewTBATS(nil) },
	}
}

// MinObservations is the practical minimum series length for the seasonal
// models, two full yearly cycles.
const MinObservations = 2 * timedataset.Frequency

// Central interval z quantiles for the 80% and 95% bands.
const (
	z80 = 1.2815515655446004
	z95 = 1.959963984540054
)

// newResult assembles a forecast result from point forecasts and an in-sample
// residual spread. Interval width grows with the square root of the step.
func newResult(td *timedataset.TimeDataset, point []float64, sigma float64) *forecast.Result {
	h := len(point)
	res := &forecast.Result{
		T:     td.HorizonTimes(h),
		Point: point,
		Band80: forecast.Band{
			Lower: make([]float64, h),
			Upper: make([]float64, h),
		},
		Band95: forecast.Band{
			Lower: make([]float64, h),
			Upper: make([]float64, h),
		},
	}
	for i := 0; i < h; i++ {
		spread := sigma * math.Sqrt(float64(i+1))
		res.Band80.Lower[i] = point[i] - z80*spread
		res.Band80.Upper[i] = point[i] + z80*spread
		res.Band95.Lower[i] = point[i] - z95*spread
		res.Band95.Upper[i] = point[i] + z95*spread
	}
	return res
}
