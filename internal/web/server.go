package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/cors"

	"github.com/vbonduro/amblitz/internal/media"
	"github.com/vbonduro/amblitz/internal/service"
	"github.com/vbonduro/amblitz/internal/site"
)

//go:embed static
var staticFiles embed.FS

const shutdownTimeout = 10 * time.Second

// Layout templates composed into every page.
var layoutFiles = []string{"base.html", "partials/header.html", "partials/footer.html"}

var paragraphPolicy = bluemonday.UGCPolicy()

type Server struct {
	projects  *service.ProjectService
	contact   *service.ContactService
	site      *site.Site
	media     media.Store
	templates fs.FS
	router    chi.Router
	tmplFuncs template.FuncMap
	origins   []string
	logger    *slog.Logger
}

// NewServer wires the HTTP routes. mediaStore may be nil, in which case
// /media answers 404. allowedOrigins applies to the /api routes only.
func NewServer(
	projects *service.ProjectService,
	contactSvc *service.ContactService,
	s *site.Site,
	mediaStore media.Store,
	tmpl fs.FS,
	allowedOrigins []string,
	logger *slog.Logger,
) *Server {
	srv := &Server{
		projects:  projects,
		contact:   contactSvc,
		site:      s,
		media:     mediaStore,
		templates: tmpl,
		router:    chi.NewRouter(),
		origins:   allowedOrigins,
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"inc":       func(i int) int { return i + 1 },
			"paragraph": paragraph,
		},
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.Get("/", s.handleHome)
	r.Get("/projects", s.handleListProjects)
	r.Get("/projects/{id}", s.handleProjectDetail)
	r.Get("/project-detail", s.handleLegacyProjectDetail)
	r.Get("/contact", s.handleContactPage)
	r.Post("/contact", s.handleContactSubmit)
	r.Post("/contact/validate", s.handleValidateField)
	r.Get("/media/*", s.handleMedia)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Accept"},
		}).Handler)
		r.Get("/health", s.handleHealth)
		r.Get("/projects", s.handleAPIListProjects)
		r.Get("/projects/{id}", s.handleAPIGetProject)
		r.Get("/projects/{id}/related", s.handleAPIRelatedProjects)
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src https://fonts.gstatic.com; "+
				"img-src 'self' data: https:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// pageData is the model handed to the base layout.
type pageData struct {
	Title           string
	MetaDescription string
	Site            *site.Site
	Nav             []site.NavLink
	Year            int
	Content         any
}

func (s *Server) newPage(r *http.Request, title string, content any) pageData {
	return pageData{
		Title:   s.site.PageTitle(title),
		Site:    s.site,
		Nav:     site.ActiveNav(s.site.Nav, r.URL.Path),
		Year:    time.Now().Year(),
		Content: content,
	}
}

// renderPage executes the base layout with the given page and partial files.
func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData, files ...string) error {
	return s.render(w, status, "base", data, append(layoutFiles[:len(layoutFiles):len(layoutFiles)], files...)...)
}

// renderPartial executes a single named template parsed from files. It is
// used for HTMX swaps.
func (s *Server) renderPartial(w http.ResponseWriter, status int, name string, data any, files ...string) error {
	return s.render(w, status, name, data, files...)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// paragraph sanitizes a description paragraph that may carry inline markup.
func paragraph(s string) template.HTML {
	return template.HTML(paragraphPolicy.Sanitize(s))
}
