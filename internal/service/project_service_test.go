package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/amblitz/internal/catalog"
	"github.com/vbonduro/amblitz/internal/catalog/watch"
	"github.com/vbonduro/amblitz/internal/domain"
	"github.com/vbonduro/amblitz/internal/site"
)

func testProjects() []domain.Project {
	return []domain.Project{
		{ID: "harbor-loft", Title: "Harbor Loft", Category: "Residential", Description: []string{"A converted warehouse.", "More."}},
		{ID: "cedar-office", Title: "Cedar Office", Category: "Commercial", Description: []string{"Open plan."}},
		{ID: "birch-house", Title: "Birch House", Category: "Residential", Description: []string{"Timber frame."}},
		{ID: "atrium-cafe", Title: "Atrium Cafe", Category: "Hospitality", Description: []string{"Light-filled."}},
		{ID: "pine-studio", Title: "Pine Studio", Category: "Commercial", Description: []string{"Studio space."}},
	}
}

func newTestProjectService(t *testing.T) (*ProjectService, *watch.Holder) {
	t.Helper()
	holder := watch.NewHolder(catalog.New(testProjects()))
	return NewProjectService(holder, site.Default(), slog.Default()), holder
}

func TestProjectServiceDetail(t *testing.T) {
	svc, _ := newTestProjectService(t)

	detail, err := svc.Detail(context.Background(), "harbor-loft")
	require.NoError(t, err)

	assert.Equal(t, "Harbor Loft", detail.Project.Title)
	assert.Equal(t, "Harbor Loft | Amblitz Design", detail.PageTitle)
	assert.Equal(t, "Harbor Loft - A converted warehouse.", detail.MetaDescription)

	related := make([]string, 0, len(detail.Related))
	for _, p := range detail.Related {
		related = append(related, p.ID)
	}
	assert.Equal(t, []string{"birch-house", "cedar-office", "atrium-cafe"}, related)
}

func TestProjectServiceDetailNotFound(t *testing.T) {
	svc, _ := newTestProjectService(t)

	_, err := svc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = svc.Detail(context.Background(), "")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProjectServiceList(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all.Projects, 5)
	assert.Empty(t, all.Active)
	assert.Equal(t, []string{"Residential", "Commercial", "Hospitality"}, all.Categories)

	commercial, err := svc.List(ctx, "Commercial")
	require.NoError(t, err)
	require.Len(t, commercial.Projects, 2)
	assert.Equal(t, "cedar-office", commercial.Projects[0].ID)
	assert.Equal(t, "Commercial", commercial.Active)
}

func TestProjectServiceFeatured(t *testing.T) {
	svc, _ := newTestProjectService(t)

	assert.Len(t, svc.Featured(context.Background(), 3), 3)
	assert.Len(t, svc.Featured(context.Background(), 10), 5)
}

func TestProjectServiceRelatedClampsLimit(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	one, err := svc.Related(ctx, "cedar-office", 0)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "pine-studio", one[0].ID)

	all, err := svc.Related(ctx, "cedar-office", 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = svc.Related(ctx, "missing", 3)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestProjectServiceSeesReloadedCatalog(t *testing.T) {
	svc, holder := newTestProjectService(t)

	holder.Store(catalog.New([]domain.Project{
		{ID: "new-one", Title: "New One", Category: "Residential", Description: []string{"Fresh."}},
	}))

	detail, err := svc.Detail(context.Background(), "new-one")
	require.NoError(t, err)
	assert.Empty(t, detail.Related)

	_, err = svc.Detail(context.Background(), "harbor-loft")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
