package timedataset

import (
	"errors"
	"fmt"
	"math"
)

var ErrBadTrainFraction = errors.New("train fraction must be between 0 and 1 exclusive")

// DefaultTrainFraction is the share of the series used for fitting when the
// caller does not override it.
const DefaultTrainFraction = 0.7

// Split partitions a series into a training prefix and a test suffix. The two
// are disjoint and contiguous with training ending strictly before test
// begins.
type Split struct {
	Training *TimeDataset
	Test     *TimeDataset
}

// NewSplit partitions td at the pivot index floor(trainFraction*len). The
// pivot month is the last training month and the test set starts the month
// immediately after. A 48 month series at 0.7 yields 34 training and 14 test
// observations.
func NewSplit(td *TimeDataset, trainFraction float64) (*Split, error) {
	if trainFraction <= 0.0 || trainFraction >= 1.0 {
		return nil, fmt.Errorf("got %f, %w", trainFraction, ErrBadTrainFraction)
	}

	n := td.Len()
	pivot := int(math.Floor(trainFraction * float64(n)))
	if pivot < 0 || pivot >= n-1 {
		return nil, fmt.Errorf("cannot split %d observations at fraction %f, %w", n, trainFraction, ErrInsufficientData)
	}

	training, err := NewMonthlyDataset(td.T[:pivot+1], td.Y[:pivot+1])
	if err != nil {
		return nil, fmt.Errorf("unable to build training set, %w", err)
	}
	test, err := NewMonthlyDataset(td.T[pivot+1:], td.Y[pivot+1:])
	if err != nil {
		return nil, fmt.Errorf("unable to build test set, %w", err)
	}
	return &Split{
		Training: training,
		Test:     test,
	}, nil
}
