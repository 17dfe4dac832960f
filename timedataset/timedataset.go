// Package timedataset stores the monthly visitor series along with its
// calendar metadata and provides the training/test partitioning used by the
// benchmark.
package timedataset

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrNoData           = errors.New("no observations")
	ErrNonMonotonic     = errors.New("time feature is not strictly increasing")
	ErrMonthGap         = errors.New("observations are not on contiguous months")
	ErrBadValue         = errors.New("observation value is missing or not a number")
	ErrNegativeValue    = errors.New("visitor count cannot be negative")
	ErrLenMismatch      = errors.New("time feature has a different length than observations")
	ErrInsufficientData = errors.New("not enough observations")
)

// Frequency is the number of observations per seasonal cycle. The series is
// always monthly.
const Frequency = 12

// TimeDataset represents a monthly time series storing a slice of time points
// and values. Both must be of the same length and the time points must fall on
// consecutive calendar months.
type TimeDataset struct {
	T []time.Time
	Y []float64
}

// NewMonthlyDataset returns an instance of a TimeDataset given a time and
// value slice. The input is copied and validated so the dataset can be treated
// as immutable afterwards.
func NewMonthlyDataset(t []time.Time, y []float64) (*TimeDataset, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"time feature has length of %d, but values has a length of %d, %w",
			len(t), len(y), ErrLenMismatch,
		)
	}

	for i := 0; i < len(t); i++ {
		if math.IsNaN(y[i]) {
			return nil, fmt.Errorf("at index %d, %w", i, ErrBadValue)
		}
		if y[i] < 0 {
			return nil, fmt.Errorf("got %f at index %d, %w", y[i], i, ErrNegativeValue)
		}
		if i == 0 {
			continue
		}
		if !t[i].After(t[i-1]) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		if !sameMonth(t[i], t[i-1].AddDate(0, 1, 0)) {
			return nil, fmt.Errorf("between index %d and %d, %w", i-1, i, ErrMonthGap)
		}
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Len returns the number of observations.
func (td *TimeDataset) Len() int {
	return len(td.Y)
}

// At returns the observation at index i.
func (td *TimeDataset) At(i int) (time.Time, float64) {
	return td.T[i], td.Y[i]
}

// StartTime returns the time of the first observation.
func (td *TimeDataset) StartTime() time.Time {
	if len(td.T) == 0 {
		return time.Time{}
	}
	return td.T[0]
}

// EndTime returns the time of the last observation.
func (td *TimeDataset) EndTime() time.Time {
	if len(td.T) == 0 {
		return time.Time{}
	}
	return td.T[len(td.T)-1]
}

// Copy returns an independent copy of the dataset.
func (td *TimeDataset) Copy() *TimeDataset {
	tSeries := make([]time.Time, len(td.T))
	ySeries := make([]float64, len(td.T))
	copy(tSeries, td.T)
	copy(ySeries, td.Y)
	return &TimeDataset{
		T: tSeries,
		Y: ySeries,
	}
}

// HorizonTimes continues the dataset's monthly calendar for the next horizon
// months after the last observation.
func (td *TimeDataset) HorizonTimes(horizon int) []time.Time {
	last := td.EndTime()
	t := make([]time.Time, 0, horizon)
	for i := 1; i <= horizon; i++ {
		t = append(t, last.AddDate(0, i, 0))
	}
	return t
}
