package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/algorecall/algorecall/internal/services"
)

// Server wires the HTTP surface to the services.
type Server struct {
	ProblemService  services.ProblemService
	RevisionService services.RevisionService
	StatsService    services.StatsService
	CORSOrigin      string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(corsMiddleware(s.CORSOrigin))

	r.Get("/", s.handleStatus)

	r.Route("/api", func(r chi.Router) {
		r.Post("/problems", s.handleCreateProblem)
		r.Get("/problems", s.handleListProblems)
		r.Get("/problems/{id}", s.handleProblemDetail)
		r.Post("/problems/{id}/archive", s.handleArchiveProblem)

		r.Get("/revisions/today", s.handleDueRevisions)
		r.Post("/revisions/{id}/complete", s.handleCompleteRevision)

		r.Get("/calendar", s.handleCalendar)
		r.Get("/analytics", s.handleAnalytics)
	})

	return r
}
