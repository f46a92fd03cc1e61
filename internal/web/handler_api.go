package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/amblitz/internal/catalog"
	"github.com/vbonduro/amblitz/internal/domain"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAPIListProjects(w http.ResponseWriter, r *http.Request) {
	listing, err := s.projects.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	s.respondJSON(w, http.StatusOK, nonNil(listing.Projects))
}

func (s *Server) handleAPIGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		s.logger.Error("get project failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to get project")
		return
	}
	s.respondJSON(w, http.StatusOK, project)
}

func (s *Server) handleAPIRelatedProjects(w http.ResponseWriter, r *http.Request) {
	limit := catalog.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	related, err := s.projects.Related(r.Context(), chi.URLParam(r, "id"), limit)
	if errors.Is(err, catalog.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		s.logger.Error("related projects failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "failed to get related projects")
		return
	}
	s.respondJSON(w, http.StatusOK, nonNil(related))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode json failed", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil(projects []domain.Project) []domain.Project {
	if projects == nil {
		return []domain.Project{}
	}
	return projects
}
