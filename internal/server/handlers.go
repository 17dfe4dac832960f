package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	visitorcast "github.com/visitorcast/visitorcast"
	"github.com/visitorcast/visitorcast/event"
	"github.com/visitorcast/visitorcast/models"
)

// holidayLookahead bounds how far past the end of the series the holiday
// overlay is computed.
const holidayLookahead = 24

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("unable to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", zap.Error(err))
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// horizonParam parses the h query parameter falling back to the configured
// default horizon.
func (s *Server) horizonParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("h")
	if raw == "" {
		return s.cfg.Benchmark.DefaultHorizon, nil
	}
	h, err := strconv.Atoi(raw)
	if err != nil || h < 1 {
		return 0, errors.New("h must be an integer of at least 1")
	}
	return h, nil
}

func trainingParam(r *http.Request) bool {
	return r.URL.Query().Get("training") == "true"
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	horizon, err := s.horizonParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := visitorcast.DashboardPage(s.session, horizon)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		s.logger.Warn("unable to render charts", zap.Error(err))
	}
}

type seriesPayload struct {
	T []time.Time `json:"time"`
	Y []float64   `json:"values"`
}

type forecastResponse struct {
	Model    string        `json:"model"`
	Horizon  int           `json:"horizon"`
	History  seriesPayload `json:"history"`
	Forecast any           `json:"forecast"`
}

func (s *Server) handleAPIForecast(w http.ResponseWriter, r *http.Request) {
	horizon, err := s.horizonParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	name := r.URL.Query().Get("model")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("model parameter is required"))
		return
	}

	history := s.session.History()
	resp := forecastResponse{
		Model:   name,
		Horizon: horizon,
		History: seriesPayload{T: history.T, Y: history.Y},
	}

	if name == visitorcast.EnsembleName {
		ens, err := s.session.ReforecastEnsemble(horizon)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.Forecast = ens
		s.writeJSON(w, http.StatusOK, resp)
		return
	}

	res, err := s.session.Reforecast(name, horizon)
	switch {
	case errors.Is(err, visitorcast.ErrUnknownModel), errors.Is(err, models.ErrBadHorizon):
		s.writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	resp.Forecast = res
	s.writeJSON(w, http.StatusOK, resp)
}

type accuracyResponse struct {
	Rows []visitorcast.AccuracyRow `json:"rows"`
}

func (s *Server) handleAPIAccuracy(w http.ResponseWriter, r *http.Request) {
	ranked := visitorcast.Rank(s.report.Rows, trainingParam(r))
	s.writeJSON(w, http.StatusOK, accuracyResponse{Rows: ranked})
}

type holidaysResponse struct {
	Marks []event.MonthMark `json:"marks"`
}

func (s *Server) handleAPIHolidays(w http.ResponseWriter, r *http.Request) {
	history := s.session.History()
	marks, err := event.HolidayMonths(history.StartTime(), history.EndTime().AddDate(0, holidayLookahead, 0))
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, holidaysResponse{Marks: marks})
}
