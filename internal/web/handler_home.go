package web

import "net/http"

const featuredCount = 3

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	content := map[string]any{
		"Featured":     s.projects.Featured(r.Context(), featuredCount),
		"Stats":        s.site.Stats,
		"Testimonials": s.site.Testimonials,
	}
	page := s.newPage(r, "", content)
	page.MetaDescription = s.site.Tagline

	if err := s.renderPage(w, http.StatusOK, page,
		"pages/home.html", "partials/project_card.html",
	); err != nil {
		s.logger.Error("render page failed", "page", "home", "error", err)
	}
}
