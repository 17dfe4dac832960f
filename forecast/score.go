package forecast

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrResLenMismatch = errors.New("predicted and actual have different lengths")
	ErrNoComparable   = errors.New("no comparable points between predicted and actual")
	ErrZeroScale      = errors.New("naive one-step scale of the training set is zero")
)

// Scores tracks the accuracy of a forecast against actuals. MASE is NaN when
// no training-set scale applies, e.g. for the ensemble.
type Scores struct {
	RMSE float64 `json:"root_mean_squared_error"`
	MAPE float64 `json:"mean_absolute_percent_error"`
	MASE float64 `json:"mean_absolute_scaled_error"`
}

// NewScores calculates RMSE, MAPE, and MASE given the predicted and actual
// slice values. maseScale is the training set's mean absolute one-step
// difference from NaiveScale; pass NaN to leave MASE undefined.
func NewScores(predicted, actual []float64, maseScale float64) (*Scores, error) {
	rmse, err := RMSE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute root mean squared error, %w", err)
	}
	mape, err := MAPE(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("unable to compute mean absolute percent error, %w", err)
	}

	mase := math.NaN()
	if !math.IsNaN(maseScale) {
		mase, err = MASE(predicted, actual, maseScale)
		if err != nil {
			return nil, fmt.Errorf("unable to compute mean absolute scaled error, %w", err)
		}
	}

	return &Scores{
		RMSE: rmse,
		MAPE: mape,
		MASE: mase,
	}, nil
}

// RMSE computes the root mean squared error, sqrt(mean((y-yhat)^2)). NaN pairs
// are excluded from the mean. A score of 0 means a perfect match.
func RMSE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	var sse float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		sse += math.Pow(actual[i]-predicted[i], 2.0)
		cnt++
	}
	if cnt == 0 {
		return 0, ErrNoComparable
	}
	return math.Sqrt(sse / float64(cnt)), nil
}

// MAPE calculates the mean absolute percent error, mean(abs((y-yhat)/y))*100.
// Zero actuals leave the percent error undefined and are excluded along with
// NaN pairs.
func MAPE(predicted, actual []float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}

	var sum float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) || actual[i] == 0 {
			continue
		}
		sum += math.Abs((actual[i] - predicted[i]) / actual[i])
		cnt++
	}
	if cnt == 0 {
		return 0, ErrNoComparable
	}
	return sum / float64(cnt) * 100.0, nil
}

// MASE computes the mean absolute error scaled by the training set's naive
// one-step difference, see NaiveScale. Values under 1 beat the naive
// random-walk forecast on the training data.
func MASE(predicted, actual []float64, scale float64) (float64, error) {
	if len(predicted) != len(actual) {
		return 0, fmt.Errorf("expected %d, but got %d, %w", len(actual), len(predicted), ErrResLenMismatch)
	}
	if scale == 0 || math.IsNaN(scale) {
		return 0, ErrZeroScale
	}

	var sum float64
	var cnt int
	for i := 0; i < len(actual); i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		sum += math.Abs(actual[i] - predicted[i])
		cnt++
	}
	if cnt == 0 {
		return 0, ErrNoComparable
	}
	return sum / float64(cnt) / scale, nil
}

// NaiveScale returns the mean absolute one-step difference of the training
// values. It is the scaling denominator for every MASE row regardless of
// which set the row scores.
func NaiveScale(training []float64) (float64, error) {
	if len(training) < 2 {
		return 0, ErrNoComparable
	}

	var sum float64
	for i := 1; i < len(training); i++ {
		sum += math.Abs(training[i] - training[i-1])
	}
	scale := sum / float64(len(training)-1)
	if scale == 0 {
		return 0, ErrZeroScale
	}
	return scale, nil
}
