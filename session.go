package visitorcast

import (
	"errors"
	"fmt"

	"github.com/visitorcast/visitorcast/forecast"
	"github.com/visitorcast/visitorcast/models"
	"github.com/visitorcast/visitorcast/timedataset"
)

var ErrUnknownModel = errors.New("unknown model name")

// Session owns the full-series model fits backing the interactive horizon
// control. Models are fitted once at construction and never mutated, so a
// session is safe to share across concurrent readers; every Reforecast call
// returns freshly allocated output.
type Session struct {
	td     *timedataset.TimeDataset
	order  []string
	models map[string]models.Model
}

// NewSession fits every model on the full series. Construction fails if any
// fit fails; a session never serves a partial model set.
func NewSession(td *timedataset.TimeDataset, factories []models.Factory) (*Session, error) {
	if factories == nil {
		factories = models.DefaultFactories()
	}

	s := &Session{
		td:     td.Copy(),
		models: make(map[string]models.Model, len(factories)),
	}
	for _, factory := range factories {
		m := factory()
		if err := m.Fit(s.td); err != nil {
			return nil, fmt.Errorf("model %s, %w", m.Name(), err)
		}
		s.order = append(s.order, m.Name())
		s.models[m.Name()] = m
	}
	return s, nil
}

// ModelNames returns the configured model names in their canonical order.
func (s *Session) ModelNames() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// History returns the series the session models were fitted on.
func (s *Session) History() *timedataset.TimeDataset {
	return s.td.Copy()
}

// Reforecast recomputes the named model's forecast at the given horizon using
// the cached full-series fit. Fitting is not repeated; consecutive calls with
// the same arguments return identical results.
func (s *Session) Reforecast(name string, horizon int) (*forecast.Result, error) {
	m, exists := s.models[name]
	if !exists {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownModel)
	}
	return m.Forecast(horizon)
}

// ReforecastEnsemble recomputes every model's forecast at the given horizon
// and combines them into the simple-average ensemble.
func (s *Session) ReforecastEnsemble(horizon int) (*forecast.Ensemble, error) {
	results := make([]*forecast.Result, 0, len(s.order))
	for _, name := range s.order {
		res, err := s.models[name].Forecast(horizon)
		if err != nil {
			return nil, fmt.Errorf("model %s, %w", name, err)
		}
		results = append(results, res)
	}
	return forecast.Combine(results...)
}
