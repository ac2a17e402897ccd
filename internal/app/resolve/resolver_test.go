package resolve

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"portal/internal/app/ds"
	"portal/internal/app/role"
)

// memoryStore — хранилище в памяти для тестов резолвера
type memoryStore struct {
	processes []ds.BusinessProcess
	contents  map[string]ds.Content
}

func (m *memoryStore) ProcessByID(_ context.Context, id string) (*ds.BusinessProcess, error) {
	for _, p := range m.processes {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) ProcessList(_ context.Context) ([]ds.BusinessProcess, error) {
	out := make([]ds.BusinessProcess, len(m.processes))
	copy(out, m.processes)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryStore) ContentByIDs(_ context.Context, ids []string) ([]ds.Content, error) {
	var found []ds.Content
	for _, id := range ids {
		if c, ok := m.contents[id]; ok {
			found = append(found, c)
		}
	}
	return found, nil
}

func newTestStore() *memoryStore {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &memoryStore{
		processes: []ds.BusinessProcess{
			{
				ID:           "proc-orders",
				Name:         "Обработка заказа",
				Description:  "От заявки клиента до отгрузки",
				Departments:  datatypes.NewJSONSlice([]string{"Продажи", "Склад"}),
				AllowedRoles: "buyer,admin",
				CreatedAt:    base,
				Steps: []ds.ProcessStep{
					{
						ProcessID:         "proc-orders",
						StepNumber:        1,
						Title:             "Приём заявки",
						Responsible:       "Менеджер",
						RelatedContentIDs: datatypes.NewJSONSlice([]string{"content-a", "content-gone", "content-b"}),
					},
					{
						ProcessID:  "proc-orders",
						StepNumber: 2,
						Title:      "Сборка на складе",
					},
				},
			},
			{
				ID:           "proc-admin",
				Name:         "Инвентаризация",
				AllowedRoles: "admin",
				CreatedAt:    base.Add(time.Hour),
			},
		},
		contents: map[string]ds.Content{
			"content-a": {ID: "content-a", Title: "Как оформить заявку", Type: ds.ContentTypeVideo, Duration: "12:30"},
			"content-b": {ID: "content-b", Title: "Регламент отгрузки", Type: ds.ContentTypeInstruction},
		},
	}
}

func TestResolver_Process(t *testing.T) {
	ctx := context.Background()
	r := New(newTestStore())

	t.Run("NotFound", func(t *testing.T) {
		_, err := r.Process(ctx, "no-such-process", role.Admin)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Forbidden", func(t *testing.T) {
		_, err := r.Process(ctx, "proc-orders", role.Manager)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("AdminBypassesPolicy", func(t *testing.T) {
		view, err := r.Process(ctx, "proc-admin", role.Admin)
		require.NoError(t, err)
		assert.Equal(t, "Инвентаризация", view.Name)
	})

	t.Run("ResolvesStepsAndReferences", func(t *testing.T) {
		view, err := r.Process(ctx, "proc-orders", role.Buyer)
		require.NoError(t, err)

		assert.Equal(t, []string{"Продажи", "Склад"}, view.Departments)
		require.Len(t, view.Steps, 2)
		assert.Equal(t, 1, view.Steps[0].StepNumber)
		assert.Equal(t, 2, view.Steps[1].StepNumber)

		// битая ссылка content-gone молча выпадает, порядок остальных сохраняется
		refs := view.Steps[0].RelatedContent
		require.Len(t, refs, 2)
		assert.Equal(t, "content-a", refs[0].ID)
		assert.Equal(t, "Как оформить заявку", refs[0].Title)
		assert.Equal(t, ds.ContentTypeVideo, refs[0].Type)
		assert.Equal(t, "content-b", refs[1].ID)

		assert.Empty(t, view.Steps[1].RelatedContent)
	})
}

func TestResolver_List(t *testing.T) {
	ctx := context.Background()
	r := New(newTestStore())

	t.Run("FilteredByRole", func(t *testing.T) {
		views, err := r.List(ctx, role.Buyer)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "proc-orders", views[0].ID)
	})

	t.Run("AdminSeesAllNewestFirst", func(t *testing.T) {
		views, err := r.List(ctx, role.Admin)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "proc-admin", views[0].ID)
		assert.Equal(t, "proc-orders", views[1].ID)
	})

	t.Run("SummaryKeepsIDsWithoutExpansion", func(t *testing.T) {
		views, err := r.List(ctx, role.Buyer)
		require.NoError(t, err)
		step := views[0].Steps[0]
		assert.Equal(t, []string{"content-a", "content-gone", "content-b"}, step.RelatedContentIDs)
		assert.Empty(t, step.RelatedContent)
	})
}
