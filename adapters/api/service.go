// Package api exposes the validation engine over HTTP for the advisory
// frontend.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"soilsense/domain/soil"
	"soilsense/internal"
	"soilsense/internal/errors"
	"soilsense/internal/report"
)

// Service wires the report assembler behind a chi router.
type Service struct {
	assembler *report.Assembler
	router    *chi.Mux
	logger    *internal.Logger
}

// NewService builds the HTTP service.
func NewService(assembler *report.Assembler) *Service {
	s := &Service{
		assembler: assembler,
		router:    chi.NewRouter(),
		logger:    internal.NewDefaultLogger(),
	}
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/v1/soil/validate", s.handleValidate)
	return s
}

// Router returns the http handler for the service.
func (s *Service) Router() http.Handler {
	return s.router
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleValidate decodes a soil record, validates it, and returns the
// assembled advisory report. Accept: text/html returns the rendered report.
func (s *Service) handleValidate(w http.ResponseWriter, r *http.Request) {
	var record soil.SoilRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return
	}

	rep, err := s.assembler.Assemble(r.Context(), record)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.GetCode(err) == errors.CodeInvalidArgument {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	if r.Header.Get("Accept") == "text/html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(rep.HTML())
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
