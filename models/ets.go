package models

import (
	"fmt"
	"math"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/timedataset"
)

// ETSOptions configures the exponential smoothing adapter. When Optimize is
// set the smoothing weights are chosen by a deterministic grid search
// minimizing in-sample squared error and the Alpha/Beta/Gamma fields are used
// as fallbacks only.
type ETSOptions struct {
	Alpha          float64
	Beta           float64
	Gamma          float64
	SeasonalPeriod int
	Optimize       bool
}

func NewDefaultETSOptions() *ETSOptions {
	return &ETSOptions{
		Alpha:          0.3,
		Beta:           0.1,
		Gamma:          0.1,
		SeasonalPeriod: timedataset.Frequency,
		Optimize:       true,
	}
}

// ETS fits additive Holt-Winters triple exponential smoothing: a smoothed
// level, an additive trend, and additive seasonal indices over the yearly
// cycle.
type ETS struct {
	opt *ETSOptions

	td       *timedataset.TimeDataset
	level    float64
	trend    float64
	seasonal []float64
	fitted   []float64
	sigma    float64
	alpha    float64
	beta     float64
	gamma    float64
}

func NewETS(opt *ETSOptions) *ETS {
	if opt == nil {
		opt = NewDefaultETSOptions()
	}
	return &ETS{
		opt: opt,
	}
}

func (e *ETS) Name() string {
	return "ETS"
}

func (e *ETS) Fit(td *timedataset.TimeDataset) error {
	if e.opt == nil {
		return ErrNoOptions
	}
	s := e.opt.SeasonalPeriod
	if td.Len() < 2*s {
		return fmt.Errorf("%s needs at least %d observations but got %d, %w: %w",
			e.Name(), 2*s, td.Len(), ErrInsufficientData, ErrFit)
	}

	e.td = td.Copy()

	alpha, beta, gamma := e.opt.Alpha, e.opt.Beta, e.opt.Gamma
	if e.opt.Optimize {
		alpha, beta, gamma = e.searchWeights()
	}
	e.alpha, e.beta, e.gamma = alpha, beta, gamma

	state := smooth(e.td.Y, s, alpha, beta, gamma)
	e.level = state.level
	e.trend = state.trend
	e.seasonal = state.seasonal
	e.fitted = state.fitted

	var sse float64
	for i := range e.fitted {
		diff := e.td.Y[i] - e.fitted[i]
		sse += diff * diff
	}
	e.sigma = math.Sqrt(sse / float64(len(e.fitted)))
	return nil
}

// searchWeights scans a fixed grid of smoothing weights and keeps the first
// combination with the lowest in-sample squared error. The scan order is
// fixed so the result is deterministic.
func (e *ETS) searchWeights() (alpha, beta, gamma float64) {
	grid := []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.7, 0.9}
	s := e.opt.SeasonalPeriod

	best := math.Inf(1)
	alpha, beta, gamma = e.opt.Alpha, e.opt.Beta, e.opt.Gamma
	for _, a := range grid {
		for _, b := range grid {
			for _, g := range grid {
				state := smooth(e.td.Y, s, a, b, g)
				var sse float64
				for i := range state.fitted {
					diff := e.td.Y[i] - state.fitted[i]
					sse += diff * diff
				}
				if sse < best {
					best = sse
					alpha, beta, gamma = a, b, g
				}
			}
		}
	}
	return alpha, beta, gamma
}

type smoothState struct {
	level    float64
	trend    float64
	seasonal []float64
	fitted   []float64
}

// smooth runs the additive Holt-Winters recursion over y. The returned
// seasonal slice holds the most recent index per position in the cycle and
// the fitted slice holds the one-step-ahead in-sample predictions.
func smooth(y []float64, s int, alpha, beta, gamma float64) smoothState {
	n := len(y)
	cycles := n / s

	// initial level and trend from the first two full cycles
	var first, second float64
	for i := 0; i < s; i++ {
		first += y[i]
		second += y[s+i]
	}
	first /= float64(s)
	second /= float64(s)

	level := first
	trend := (second - first) / float64(s)

	// initial seasonal indices averaged across all full cycles
	seasonal := make([]float64, s)
	for i := 0; i < s; i++ {
		var sum float64
		for k := 0; k < cycles; k++ {
			var cycleMean float64
			for j := 0; j < s; j++ {
				cycleMean += y[k*s+j]
			}
			cycleMean /= float64(s)
			sum += y[k*s+i] - cycleMean
		}
		seasonal[i] = sum / float64(cycles)
	}

	fitted := make([]float64, n)
	for t := 0; t < n; t++ {
		si := t % s
		fitted[t] = level + trend + seasonal[si]

		prevLevel := level
		level = alpha*(y[t]-seasonal[si]) + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
		seasonal[si] = gamma*(y[t]-level) + (1-gamma)*seasonal[si]
	}

	return smoothState{
		level:    level,
		trend:    trend,
		seasonal: seasonal,
		fitted:   fitted,
	}
}

func (e *ETS) Fitted() []float64 {
	return e.fitted
}

func (e *ETS) Forecast(horizon int) (*forecast.Result, error) {
	if e.td == nil {
		return nil, fmt.Errorf("%s, %w", e.Name(), ErrNotFitted)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrBadHorizon)
	}

	s := e.opt.SeasonalPeriod
	n := e.td.Len()

	point := make([]float64, horizon)
	for k := 0; k < horizon; k++ {
		si := (n + k) % s
		point[k] = e.level + float64(k+1)*e.trend + e.seasonal[si]
	}

	return newResult(e.td, point, e.sigma), nil
}
