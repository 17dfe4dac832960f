// Package forecast holds the forecast result types, the ensemble combinator,
// and the accuracy metrics shared by every model.
package forecast

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyResult     = errors.New("forecast result has no points")
	ErrBandLenMismatch = errors.New("interval band length does not match point forecasts")
)

// Band is a central prediction interval with one lower and upper bound per
// forecast step.
type Band struct {
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// Result is a point forecast over some horizon along with its 80% and 95%
// central interval bands. All slices have length equal to the horizon and run
// in chronological order continuing the fitted series.
type Result struct {
	T      []time.Time `json:"time"`
	Point  []float64   `json:"point"`
	Band80 Band        `json:"band_80"`
	Band95 Band        `json:"band_95"`
}

// Horizon returns the number of forecast steps.
func (r *Result) Horizon() int {
	return len(r.Point)
}

// Validate checks the internal shape consistency of the result.
func (r *Result) Validate() error {
	n := len(r.Point)
	if n == 0 {
		return ErrEmptyResult
	}
	if len(r.T) != n {
		return fmt.Errorf("expected %d time points but got %d, %w", n, len(r.T), ErrBandLenMismatch)
	}
	for _, band := range []Band{r.Band80, r.Band95} {
		if len(band.Lower) != n || len(band.Upper) != n {
			return fmt.Errorf("expected %d interval bounds, %w", n, ErrBandLenMismatch)
		}
	}
	return nil
}
