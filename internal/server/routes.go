package server

import "net/http"

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /charts", s.handleCharts)
	mux.HandleFunc("GET /table", s.handleTable)

	mux.HandleFunc("GET /api/forecast", s.handleAPIForecast)
	mux.HandleFunc("GET /api/accuracy", s.handleAPIAccuracy)
	mux.HandleFunc("GET /api/holidays", s.handleAPIHolidays)

	return s.logRequests(mux)
}
