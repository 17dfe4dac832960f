// Package visitorcast benchmarks univariate forecasting models against a
// monthly visitor-count series and serves the results interactively. The
// one-shot evaluation fits every model on a training split, scores the
// held-out tail, and combines the models into a simple-average ensemble.
package visitorcast

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/models"
	"github.com/visitorcast/visitorcast/timedataset"
)

var ErrEvaluation = errors.New("evaluation failed")

const (
	SetTraining = "Training"
	SetTest     = "Test"

	// EnsembleName identifies the combination forecast in rows, sessions,
	// and API calls.
	EnsembleName = "Ensemble"
)

// AccuracyRow is one line of the benchmark table: a model scored on one of
// the two sets. MASE is NaN for the ensemble which has no training fit.
type AccuracyRow struct {
	Model string
	Set   string
	RMSE  float64
	MAPE  float64
	MASE  float64
}

type accuracyRowWire struct {
	Model string   `json:"model"`
	Set   string   `json:"set"`
	RMSE  float64  `json:"rmse"`
	MAPE  float64  `json:"mape"`
	MASE  *float64 `json:"mase"`
}

// MarshalJSON serializes an undefined MASE as null.
func (r AccuracyRow) MarshalJSON() ([]byte, error) {
	wire := accuracyRowWire{
		Model: r.Model,
		Set:   r.Set,
		RMSE:  r.RMSE,
		MAPE:  r.MAPE,
	}
	if !math.IsNaN(r.MASE) {
		mase := r.MASE
		wire.MASE = &mase
	}
	return json.Marshal(wire)
}

func (r *AccuracyRow) UnmarshalJSON(data []byte) error {
	var wire accuracyRowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	r.Model = wire.Model
	r.Set = wire.Set
	r.RMSE = wire.RMSE
	r.MAPE = wire.MAPE
	r.MASE = math.NaN()
	if wire.MASE != nil {
		r.MASE = *wire.MASE
	}
	return nil
}

// Report is the complete output of one benchmark run: the accuracy matrix
// plus the test-horizon forecasts behind it.
type Report struct {
	Rows          []AccuracyRow
	ModelNames    []string
	TestForecasts map[string]*forecast.Result
	Ensemble      *forecast.Ensemble
}

// Evaluator runs the one-shot benchmark over a configured set of model
// factories. The evaluator itself holds no fitted state; every Run fits fresh
// model instances.
type Evaluator struct {
	factories []models.Factory
}

// NewEvaluator creates an evaluator over the given model set. A nil factory
// list uses the default ARIMA, ETS, TBATS lineup.
func NewEvaluator(factories []models.Factory) *Evaluator {
	if factories == nil {
		factories = models.DefaultFactories()
	}
	return &Evaluator{
		factories: factories,
	}
}

// Run fits every model on the training split, forecasts across the full test
// horizon, combines the forecasts into the ensemble, and scores everything.
// Any model failure aborts the whole run; no partial report is returned.
func (e *Evaluator) Run(split *timedataset.Split) (*Report, error) {
	horizon := split.Test.Len()

	maseScale, err := forecast.NaiveScale(split.Training.Y)
	if err != nil {
		return nil, fmt.Errorf("unable to compute naive training scale, %w: %w", err, ErrEvaluation)
	}

	report := &Report{
		TestForecasts: make(map[string]*forecast.Result, len(e.factories)),
	}

	var results []*forecast.Result
	for _, factory := range e.factories {
		m := factory()
		name := m.Name()

		if err := m.Fit(split.Training); err != nil {
			return nil, fmt.Errorf("model %s, %w: %w", name, err, ErrEvaluation)
		}
		res, err := m.Forecast(horizon)
		if err != nil {
			return nil, fmt.Errorf("model %s, %w: %w", name, err, ErrEvaluation)
		}

		trainScores, err := forecast.NewScores(m.Fitted(), split.Training.Y, maseScale)
		if err != nil {
			return nil, fmt.Errorf("model %s training scores, %w: %w", name, err, ErrEvaluation)
		}
		testScores, err := forecast.NewScores(res.Point, split.Test.Y, maseScale)
		if err != nil {
			return nil, fmt.Errorf("model %s test scores, %w: %w", name, err, ErrEvaluation)
		}

		report.Rows = append(report.Rows,
			AccuracyRow{Model: name, Set: SetTraining, RMSE: trainScores.RMSE, MAPE: trainScores.MAPE, MASE: trainScores.MASE},
			AccuracyRow{Model: name, Set: SetTest, RMSE: testScores.RMSE, MAPE: testScores.MAPE, MASE: testScores.MASE},
		)
		report.ModelNames = append(report.ModelNames, name)
		report.TestForecasts[name] = res
		results = append(results, res)
	}

	ens, err := forecast.Combine(results...)
	if err != nil {
		return nil, fmt.Errorf("model %s, %w: %w", EnsembleName, err, ErrEvaluation)
	}
	ensScores, err := forecast.NewScores(ens.Point, split.Test.Y, math.NaN())
	if err != nil {
		return nil, fmt.Errorf("model %s test scores, %w: %w", EnsembleName, err, ErrEvaluation)
	}
	report.Rows = append(report.Rows, AccuracyRow{
		Model: EnsembleName,
		Set:   SetTest,
		RMSE:  ensScores.RMSE,
		MAPE:  ensScores.MAPE,
		MASE:  math.NaN(),
	})
	report.Ensemble = ens

	return report, nil
}
