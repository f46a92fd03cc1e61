package catalog

import (
	"errors"

	"github.com/samber/lo"

	"github.com/vbonduro/amblitz/internal/domain"
)

// DefaultRelatedLimit is the number of related projects shown on a detail page.
const DefaultRelatedLimit = 3

// ErrNotFound is returned when no project matches the requested id.
var ErrNotFound = errors.New("project not found")

// FindByID returns the first project whose id equals targetID exactly.
// An empty targetID never matches.
func FindByID(records []domain.Project, targetID string) (domain.Project, error) {
	if targetID == "" {
		return domain.Project{}, ErrNotFound
	}
	project, ok := lo.Find(records, func(p domain.Project) bool {
		return p.ID == targetID
	})
	if !ok {
		return domain.Project{}, ErrNotFound
	}
	return project, nil
}

// SelectRelated returns up to limit projects related to current, in catalog
// order. Projects of the same category come first; when there are fewer than
// limit of them, the remaining projects fill the list. Records sharing
// current's id are never included.
//
// Filler membership is decided by position, so two records that happen to
// share an id (neither of them current) are treated as distinct records.
func SelectRelated(records []domain.Project, current domain.Project, limit int) []domain.Project {
	if limit <= 0 {
		return []domain.Project{}
	}

	peers := make(map[int]bool)
	related := lo.Filter(records, func(p domain.Project, i int) bool {
		if p.Category == current.Category && p.ID != current.ID {
			peers[i] = true
			return true
		}
		return false
	})

	if len(related) < limit {
		fillers := lo.Filter(records, func(p domain.Project, i int) bool {
			return p.ID != current.ID && !peers[i]
		})
		related = append(related, fillers...)
	}

	if len(related) > limit {
		related = related[:limit]
	}
	return related
}
