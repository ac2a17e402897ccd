package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portal/internal/app/ds"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ds.Category{}, &ds.Content{}))

	return &Repository{db: db}
}

func seedCategoryWithContents(t *testing.T, r *Repository, slug, name string, contents int) *ds.Category {
	t.Helper()

	category, err := r.CreateCategory(slug, name, "", "folder", "")
	require.NoError(t, err)

	for i := 0; i < contents; i++ {
		require.NoError(t, r.CreateContent(&ds.Content{
			Title:      name,
			CategoryID: category.ID,
			Type:       ds.ContentTypeArticle,
		}))
	}
	return category
}

func TestDeleteCategory_ReportsContentCount(t *testing.T) {
	r := newTestRepository(t)

	seedCategoryWithContents(t, r, "onboarding", "Адаптация", 3)
	other := seedCategoryWithContents(t, r, "sales", "Продажи", 1)

	name, count, err := r.DeleteCategory("onboarding")
	require.NoError(t, err)
	assert.Equal(t, "Адаптация", name)
	assert.Equal(t, int64(3), count)

	// Удалена только запрошенная категория
	gone, err := r.GetCategoryBySlug("onboarding")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := r.GetCategoryBySlug("sales")
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, other.ID, kept.ID)
}

func TestDeleteCategory_Empty(t *testing.T) {
	r := newTestRepository(t)
	seedCategoryWithContents(t, r, "logistics", "Логистика", 0)

	name, count, err := r.DeleteCategory("logistics")
	require.NoError(t, err)
	assert.Equal(t, "Логистика", name)
	assert.Zero(t, count)
}

func TestDeleteCategory_Missing(t *testing.T) {
	r := newTestRepository(t)

	_, _, err := r.DeleteCategory("no-such")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
