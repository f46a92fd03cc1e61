package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/amblitz/internal/catalog"
	"github.com/vbonduro/amblitz/internal/domain"
	"github.com/vbonduro/amblitz/internal/site"
)

// maxRelatedLimit caps the related list requested through the API.
const maxRelatedLimit = 12

// catalogProvider is the subset of watch.Holder that ProjectService requires.
type catalogProvider interface {
	Current() *catalog.Catalog
}

type ProjectService struct {
	catalogs catalogProvider
	site     *site.Site
	logger   *slog.Logger
}

func NewProjectService(catalogs catalogProvider, s *site.Site, logger *slog.Logger) *ProjectService {
	return &ProjectService{catalogs: catalogs, site: s, logger: logger}
}

// ProjectListing is the model of the projects page.
type ProjectListing struct {
	Projects   []domain.Project
	Categories []string
	Active     string
}

// ProjectDetail is the model of a project detail page.
type ProjectDetail struct {
	Project         domain.Project
	Related         []domain.Project
	PageTitle       string
	MetaDescription string
}

// List returns the projects in category along with every known category.
// An empty category selects all projects and leaves Active empty.
func (s *ProjectService) List(_ context.Context, category string) (*ProjectListing, error) {
	c := s.catalogs.Current()
	return &ProjectListing{
		Projects:   c.ByCategory(category),
		Categories: c.Categories(),
		Active:     category,
	}, nil
}

// Featured returns the first n projects in catalog order.
func (s *ProjectService) Featured(_ context.Context, n int) []domain.Project {
	projects := s.catalogs.Current().Projects()
	if n >= 0 && len(projects) > n {
		projects = projects[:n]
	}
	return projects
}

func (s *ProjectService) Get(_ context.Context, id string) (domain.Project, error) {
	return s.catalogs.Current().FindByID(id)
}

// Detail resolves the project with id and its related projects. It returns
// catalog.ErrNotFound when id is unknown.
func (s *ProjectService) Detail(_ context.Context, id string) (*ProjectDetail, error) {
	c := s.catalogs.Current()
	project, err := c.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %q: %w", id, err)
	}

	detail := &ProjectDetail{
		Project:   project,
		Related:   c.Related(project, catalog.DefaultRelatedLimit),
		PageTitle: s.site.PageTitle(project.Title),
	}
	if len(project.Description) > 0 {
		detail.MetaDescription = project.Title + " - " + project.Description[0]
	}
	s.logger.Debug("project detail resolved", "project_id", id, "related", len(detail.Related))
	return detail, nil
}

// Related returns up to limit projects related to id. limit is clamped to
// [1, 12].
func (s *ProjectService) Related(_ context.Context, id string, limit int) ([]domain.Project, error) {
	c := s.catalogs.Current()
	project, err := c.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %q: %w", id, err)
	}
	limit = max(1, min(limit, maxRelatedLimit))
	return c.Related(project, limit), nil
}
