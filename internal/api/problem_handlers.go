package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/algorecall/algorecall/internal/errors"
	"github.com/algorecall/algorecall/internal/logger"
	"github.com/algorecall/algorecall/internal/models"
)

func (s *Server) handleCreateProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var input models.NewProblem
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("creating problem: name=%s, category=%s", input.Name, input.Category)

	problem, err := s.ProblemService.Create(r.Context(), input, models.Today())
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, problem)
}

func (s *Server) handleListProblems(w http.ResponseWriter, r *http.Request) {
	problems, err := s.ProblemService.List(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if problems == nil {
		problems = []models.Problem{}
	}
	respondJSON(w, r, http.StatusOK, problems)
}

func (s *Server) handleProblemDetail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := s.ProblemService.Detail(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, detail)
}

func (s *Server) handleArchiveProblem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.ProblemService.Archive(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("problem archived: id=%d", id)
	respondJSON(w, r, http.StatusOK, map[string]string{"message": "problem archived"})
}

func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid id: " + idStr)
	}
	return id, nil
}
