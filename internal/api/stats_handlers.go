package api

import (
	"net/http"
	"strconv"

	"github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
)

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid month"))
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid year"))
		return
	}

	log.Debug("fetching calendar: month=%d, year=%d", month, year)

	calendar, err := s.RevisionService.Calendar(r.Context(), month, year, models.Today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, calendar)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("fetching analytics")

	analytics, err := s.StatsService.Analytics(r.Context(), models.Today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, analytics)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "AlgoRecall backend is running"})
}
