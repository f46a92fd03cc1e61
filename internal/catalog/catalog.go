package catalog

import (
	"slices"

	"github.com/samber/lo"

	"github.com/vbonduro/amblitz/internal/domain"
)

// Catalog is an immutable, loaded collection of projects. It is safe for
// concurrent use; a reload builds a new Catalog instead of mutating one.
type Catalog struct {
	projects []domain.Project
}

// New returns a Catalog holding a copy of projects.
func New(projects []domain.Project) *Catalog {
	return &Catalog{projects: slices.Clone(projects)}
}

// Projects returns the projects in catalog order. Callers must not modify
// the returned records' slices.
func (c *Catalog) Projects() []domain.Project {
	return slices.Clone(c.projects)
}

func (c *Catalog) Len() int {
	return len(c.projects)
}

func (c *Catalog) FindByID(id string) (domain.Project, error) {
	return FindByID(c.projects, id)
}

func (c *Catalog) Related(current domain.Project, limit int) []domain.Project {
	return SelectRelated(c.projects, current, limit)
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	return lo.Uniq(lo.Map(c.projects, func(p domain.Project, _ int) string {
		return p.Category
	}))
}

// ByCategory returns the projects in category, in catalog order. The empty
// string selects every project; any other value, "all" included, is matched
// as a category name.
func (c *Catalog) ByCategory(category string) []domain.Project {
	if category == "" {
		return c.Projects()
	}
	return lo.Filter(c.projects, func(p domain.Project, _ int) bool {
		return p.Category == category
	})
}
