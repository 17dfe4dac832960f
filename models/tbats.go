package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/timedataset"
)

// TBATSOptions configures the trigonometric seasonality adapter.
type TBATSOptions struct {
	// Harmonics is the number of fourier orders modeling the yearly cycle.
	Harmonics      int
	SeasonalPeriod int
}

func NewDefaultTBATSOptions() *TBATSOptions {
	return &TBATSOptions{
		Harmonics:      4,
		SeasonalPeriod: timedataset.Frequency,
	}
}

// TBATS models the series as a linear trend plus trigonometric seasonal
// terms, solved as a least squares regression with QR factorization.
type TBATS struct {
	opt *TBATSOptions

	td     *timedataset.TimeDataset
	coef   []float64
	fitted []float64
	sigma  float64
}

func NewTBATS(opt *TBATSOptions) *TBATS {
	if opt == nil {
		opt = NewDefaultTBATSOptions()
	}
	return &TBATS{
		opt: opt,
	}
}

func (t *TBATS) Name() string {
	return "TBATS"
}

// designRow fills one row of the regression design matrix for month index i:
// intercept, trend, and sin/cos pairs per harmonic.
func (t *TBATS) designRow(i int) []float64 {
	s := float64(t.opt.SeasonalPeriod)
	row := make([]float64, 0, 2+2*t.opt.Harmonics)
	row = append(row, 1.0, float64(i))
	for k := 1; k <= t.opt.Harmonics; k++ {
		angle := 2.0 * math.Pi * float64(k) * float64(i) / s
		row = append(row, math.Sin(angle), math.Cos(angle))
	}
	return row
}

func (t *TBATS) Fit(td *timedataset.TimeDataset) error {
	if t.opt == nil {
		return ErrNoOptions
	}
	n := td.Len()
	cols := 2 + 2*t.opt.Harmonics
	if n < MinObservations || n <= cols {
		return fmt.Errorf("%s needs more than %d observations but got %d, %w: %w",
			t.Name(), cols, n, ErrInsufficientData, ErrFit)
	}

	t.td = td.Copy()

	x := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		x.SetRow(i, t.designRow(i))
	}
	y := mat.NewVecDense(n, t.td.Y)

	var qr mat.QR
	qr.Factorize(x)
	var sol mat.Dense
	if err := qr.SolveTo(&sol, false, y); err != nil {
		return fmt.Errorf("%s design matrix is rank deficient, %w: %w", t.Name(), err, ErrFit)
	}
	t.coef = make([]float64, cols)
	for i := 0; i < cols; i++ {
		t.coef[i] = sol.At(i, 0)
	}

	t.fitted = make([]float64, n)
	var sse float64
	for i := 0; i < n; i++ {
		t.fitted[i] = t.evalRow(i)
		diff := t.td.Y[i] - t.fitted[i]
		sse += diff * diff
	}
	if dof := n - cols; dof > 0 {
		t.sigma = math.Sqrt(sse / float64(dof))
	}
	return nil
}

func (t *TBATS) evalRow(i int) float64 {
	row := t.designRow(i)
	var val float64
	for j, c := range t.coef {
		val += c * row[j]
	}
	return val
}

func (t *TBATS) Fitted() []float64 {
	return t.fitted
}

func (t *TBATS) Forecast(horizon int) (*forecast.Result, error) {
	if t.td == nil {
		return nil, fmt.Errorf("%s, %w", t.Name(), ErrNotFitted)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrBadHorizon)
	}

	n := t.td.Len()
	point := make([]float64, horizon)
	for k := 0; k < horizon; k++ {
		point[k] = t.evalRow(n + k)
	}

	return newResult(t.td, point, t.sigma), nil
}
