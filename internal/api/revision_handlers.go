package api

import (
	"net/http"

	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
)

func (s *Server) handleDueRevisions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("fetching revisions due today")

	revs, err := s.RevisionService.Due(r.Context(), models.Today())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if revs == nil {
		revs = []models.RevisionWithProblem{}
	}

	respondJSON(w, r, http.StatusOK, revs)
}

type completeRevisionRequest struct {
	Rating int `json:"rating"`
}

func (s *Server) handleCompleteRevision(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req completeRevisionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("completing revision: id=%d, rating=%d", id, req.Rating)

	result, err := s.RevisionService.Complete(r.Context(), id, req.Rating, models.Today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("revision completed: id=%d, next due %s", id, result.NextDate)
	respondJSON(w, r, http.StatusOK, result)
}
