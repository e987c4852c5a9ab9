// Package fakeapi serves the employee REST API from a local repository so the
// admin UI can run without the real backend.
package fakeapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	"github.com/csg33k/employee-admin/internal/domain"
	"github.com/csg33k/employee-admin/internal/ports"
)

type Server struct {
	repo ports.EmployeeRepository
	log  *slog.Logger
}

func New(repo ports.EmployeeRepository, log *slog.Logger) *Server {
	return &Server{repo: repo, log: log}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees", s.list)
	mux.HandleFunc("POST /employees", s.create)
	mux.HandleFunc("GET /employees/{id}", s.get)
	mux.HandleFunc("PUT /employees/{id}", s.update)
	mux.HandleFunc("DELETE /employees/{id}", s.delete)
	return mux
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	list, err := s.repo.ListEmployees(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	e, err := s.repo.GetEmployee(r.Context(), domain.ID(r.PathValue("id")))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	e, err := s.repo.CreateEmployee(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	e, err := s.repo.UpdateEmployee(r.Context(), domain.ID(r.PathValue("id")), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.DeleteEmployee(r.Context(), domain.ID(r.PathValue("id"))); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func decodeInput(w http.ResponseWriter, r *http.Request) (domain.EmployeeInput, bool) {
	var in domain.EmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return in, false
	}
	if in.FullName == "" {
		writeMessage(w, http.StatusBadRequest, "Full Name is required")
		return in, false
	}
	return in, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return
	}
	s.log.Error("fake api", "method", r.Method, "path", r.URL.Path, "err", err)
	writeMessage(w, http.StatusInternalServerError, "internal error")
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
