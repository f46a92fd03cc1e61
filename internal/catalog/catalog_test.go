package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/amblitz/internal/domain"
)

func TestCatalogCategories(t *testing.T) {
	c := New([]domain.Project{
		project("1", "Residential"),
		project("2", "Commercial"),
		project("3", "Residential"),
		project("4", "Interior"),
	})

	assert.Equal(t, []string{"Residential", "Commercial", "Interior"}, c.Categories())
	assert.Equal(t, 4, c.Len())
}

func TestCatalogByCategory(t *testing.T) {
	c := New(twoCategoryCatalog())

	assert.Equal(t, []string{"b1", "b2", "b3", "b4"}, ids(c.ByCategory("Commercial")))
	assert.Len(t, c.ByCategory(""), 10)
	assert.Empty(t, c.ByCategory("Hospitality"))
}

func TestCatalogIsolatedFromInput(t *testing.T) {
	records := twoCategoryCatalog()
	c := New(records)

	records[0].ID = "mutated"
	got, err := c.FindByID("a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	out := c.Projects()
	out[0].ID = "mutated"
	assert.Equal(t, "a1", c.Projects()[0].ID)
}

func TestCatalogRelated(t *testing.T) {
	c := New(twoCategoryCatalog())
	current, err := c.FindByID("b1")
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "b3", "b4"}, ids(c.Related(current, DefaultRelatedLimit)))
}

func TestCatalogByCategoryNamedAll(t *testing.T) {
	c := New([]domain.Project{
		project("x1", "Residential"),
		project("x2", "all"),
		project("x3", "Commercial"),
	})

	assert.Equal(t, []string{"x2"}, ids(c.ByCategory("all")))
	assert.Len(t, c.ByCategory(""), 3)
}
