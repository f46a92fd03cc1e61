package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/vbonduro/amblitz/internal/catalog"
)

// listingFiles render the filter bar together with the grid so that a
// filter swap also moves the active button.
var listingFiles = []string{
	"partials/project_listing.html", "partials/project_grid.html", "partials/project_card.html",
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	listing, err := s.projects.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "failed to list projects", http.StatusInternalServerError)
		s.logger.Error("list projects failed", "error", err)
		return
	}

	if isHTMX(r) {
		if err := s.renderPartial(w, http.StatusOK, "project-listing", listing, listingFiles...); err != nil {
			s.logger.Error("render partial failed", "partial", "project-listing", "error", err)
		}
		return
	}

	page := s.newPage(r, "Projects", map[string]any{"Listing": listing})
	if err := s.renderPage(w, http.StatusOK, page, append([]string{"pages/projects.html"}, listingFiles...)...); err != nil {
		s.logger.Error("render page failed", "page", "projects", "error", err)
	}
}

// handleProjectDetail renders one project. Unknown ids send the visitor back
// to the listing rather than showing an error page.
func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := s.projects.Detail(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		s.logger.Warn("project not found", "project_id", id)
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "failed to load project", http.StatusInternalServerError)
		s.logger.Error("project detail failed", "project_id", id, "error", err)
		return
	}

	page := s.newPage(r, "", map[string]any{"Detail": detail})
	page.Title = detail.PageTitle
	page.MetaDescription = detail.MetaDescription
	if err := s.renderPage(w, http.StatusOK, page,
		"pages/project_detail.html", "partials/project_card.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "project_detail", "project_id", id, "error", err)
	}
}

// handleLegacyProjectDetail keeps old project-detail?id= links working.
func (s *Server) handleLegacyProjectDetail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		s.logger.Warn("no project id provided")
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/projects/"+url.PathEscape(id), http.StatusMovedPermanently)
}
