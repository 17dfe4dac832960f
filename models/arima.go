package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/timedataset"
)

// ARIMAOptions configures the seasonal ARIMA adapter.
type ARIMAOptions struct {
	// AROrder is the autoregressive order fit on the differenced series.
	AROrder int
	// SeasonalPeriod is the seasonal differencing lag.
	SeasonalPeriod int
}

func NewDefaultARIMAOptions() *ARIMAOptions {
	return &ARIMAOptions{
		AROrder:        2,
		SeasonalPeriod: timedataset.Frequency,
	}
}

// ARIMA fits an autoregressive model on the series after one round of
// seasonal differencing and one round of first differencing. AR coefficients
// come from the Yule-Walker equations solved on the sample autocovariances.
type ARIMA struct {
	opt *ARIMAOptions

	td     *timedataset.TimeDataset
	mu     float64
	phi    []float64
	sigma  float64
	fitted []float64
	w      []float64
	z      []float64
}

func NewARIMA(opt *ARIMAOptions) *ARIMA {
	if opt == nil {
		opt = NewDefaultARIMAOptions()
	}
	return &ARIMA{
		opt: opt,
	}
}

func (a *ARIMA) Name() string {
	return "ARIMA"
}

func (a *ARIMA) Fit(td *timedataset.TimeDataset) error {
	if a.opt == nil {
		return ErrNoOptions
	}
	s := a.opt.SeasonalPeriod
	p := a.opt.AROrder
	n := td.Len()
	if n < MinObservations || n-s-1 <= p {
		return fmt.Errorf("%s needs more than %d observations but got %d, %w: %w",
			a.Name(), s+p+1, n, ErrInsufficientData, ErrFit)
	}

	a.td = td.Copy()
	y := a.td.Y

	// seasonal difference then first difference
	m := n - s
	a.w = make([]float64, m)
	for i := 0; i < m; i++ {
		a.w[i] = y[i+s] - y[i]
	}
	a.z = make([]float64, m-1)
	for i := 0; i < m-1; i++ {
		a.z[i] = a.w[i+1] - a.w[i]
	}

	a.mu = stat.Mean(a.z, nil)

	a.phi = yuleWalker(a.z, a.mu, p)

	// one-step in-sample residuals on the differenced scale
	var sse float64
	var cnt int
	for k := p; k < len(a.z); k++ {
		e := a.z[k] - a.predictZ(a.z, k)
		sse += e * e
		cnt++
	}
	if cnt > 0 {
		a.sigma = math.Sqrt(sse / float64(cnt))
	}

	a.fitted = a.inSampleFit()
	return nil
}

// predictZ evaluates the AR recursion for the differenced value at index k
// using the preceding values in z.
func (a *ARIMA) predictZ(z []float64, k int) float64 {
	pred := a.mu
	for j := 0; j < len(a.phi); j++ {
		pred += a.phi[j] * (z[k-1-j] - a.mu)
	}
	return pred
}

// inSampleFit maps one-step differenced predictions back to the original
// scale. The first seasonalPeriod+AROrder+1 points have no prediction and are
// NaN; accuracy metrics skip them.
func (a *ARIMA) inSampleFit() []float64 {
	s := a.opt.SeasonalPeriod
	p := a.opt.AROrder
	y := a.td.Y

	fitted := make([]float64, len(y))
	for t := 0; t < len(y); t++ {
		fitted[t] = math.NaN()
	}
	// y[t] = y[t-s] + w[t-s] and w[j] = w[j-1] + z[j-1]
	for t := s + p + 1; t < len(y); t++ {
		j := t - s
		wHat := a.w[j-1] + a.predictZ(a.z, j-1)
		fitted[t] = y[t-s] + wHat
	}
	return fitted
}

func (a *ARIMA) Fitted() []float64 {
	return a.fitted
}

func (a *ARIMA) Forecast(horizon int) (*forecast.Result, error) {
	if a.td == nil {
		return nil, fmt.Errorf("%s, %w", a.Name(), ErrNotFitted)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrBadHorizon)
	}

	s := a.opt.SeasonalPeriod
	n := a.td.Len()
	m := n - s

	zExt := make([]float64, len(a.z), len(a.z)+horizon)
	copy(zExt, a.z)
	wExt := make([]float64, len(a.w), len(a.w)+horizon)
	copy(wExt, a.w)
	yExt := make([]float64, n, n+horizon)
	copy(yExt, a.td.Y)

	point := make([]float64, 0, horizon)
	for k := 0; k < horizon; k++ {
		zExt = append(zExt, a.predictZ(zExt, m-1+k))
		wExt = append(wExt, wExt[m-1+k]+zExt[m-1+k])
		next := yExt[n+k-s] + wExt[m+k]
		yExt = append(yExt, next)
		point = append(point, next)
	}

	return newResult(a.td, point, a.sigma), nil
}

// yuleWalker solves the Toeplitz autocovariance system for the AR
// coefficients. A flat differenced series has no autocovariance structure and
// yields zero coefficients.
func yuleWalker(z []float64, mu float64, p int) []float64 {
	c := make([]float64, p+1)
	for k := 0; k <= p; k++ {
		var sum float64
		for t := 0; t+k < len(z); t++ {
			sum += (z[t] - mu) * (z[t+k] - mu)
		}
		c[k] = sum / float64(len(z))
	}

	// a flat differenced series has no autocovariance structure to fit; the
	// model then degrades to a seasonal random walk with drift
	phi := make([]float64, p)
	if c[0] < 1e-10 {
		return phi
	}

	r := mat.NewDense(p, p, nil)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			lag := i - j
			if lag < 0 {
				lag = -lag
			}
			r.Set(i, j, c[lag])
		}
	}
	b := mat.NewVecDense(p, c[1:p+1])

	var sol mat.VecDense
	if err := sol.SolveVec(r, b); err != nil {
		// singular or badly conditioned autocovariances, same degradation
		return phi
	}
	for i := 0; i < p; i++ {
		phi[i] = sol.AtVec(i)
	}
	return phi
}
