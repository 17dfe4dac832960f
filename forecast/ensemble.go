package forecast

import (
	"errors"
	"fmt"
	"time"
)

var ErrHorizonMismatch = errors.New("forecast results have different horizons")

// Ensemble is the elementwise arithmetic mean of several models' point
// forecasts. Interval bands from independent models are not combined so the
// ensemble carries none.
type Ensemble struct {
	T     []time.Time `json:"time"`
	Point []float64   `json:"point"`
}

// Horizon returns the number of forecast steps.
func (e *Ensemble) Horizon() int {
	return len(e.Point)
}

// Combine averages the point forecasts of the given results. All results must
// share the same horizon. The mean is symmetric so argument order does not
// matter.
func Combine(results ...*Result) (*Ensemble, error) {
	if len(results) == 0 {
		return nil, ErrEmptyResult
	}

	h := results[0].Horizon()
	for i, res := range results {
		if res.Horizon() != h {
			return nil, fmt.Errorf("result %d has horizon %d, expected %d, %w", i, res.Horizon(), h, ErrHorizonMismatch)
		}
	}

	t := make([]time.Time, h)
	copy(t, results[0].T)

	point := make([]float64, h)
	for _, res := range results {
		for i := 0; i < h; i++ {
			point[i] += res.Point[i]
		}
	}
	for i := 0; i < h; i++ {
		point[i] /= float64(len(results))
	}

	return &Ensemble{
		T:     t,
		Point: point,
	}, nil
}
