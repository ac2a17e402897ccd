package resolve

import (
	"context"
	"errors"
	"time"

	"portal/internal/app/access"
	"portal/internal/app/ds"
	"portal/internal/app/role"
)

var (
	ErrNotFound  = errors.New("process not found")
	ErrForbidden = errors.New("access denied")
)

// Store — операции хранилища, нужные резолверу
type Store interface {
	// ProcessByID возвращает процесс с шагами по возрастанию StepNumber,
	// (nil, nil) если процесса нет
	ProcessByID(ctx context.Context, id string) (*ds.BusinessProcess, error)
	// ProcessList возвращает все процессы с шагами, новые первыми
	ProcessList(ctx context.Context) ([]ds.BusinessProcess, error)
	// ContentByIDs возвращает существующие материалы по списку id,
	// отсутствующие id в результат не попадают
	ContentByIDs(ctx context.Context, ids []string) ([]ds.Content, error)
}

// ContentRef — краткая ссылка на материал для отображения в шаге процесса
type ContentRef struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Duration string `json:"duration,omitempty"`
}

type StepView struct {
	StepNumber        int          `json:"step_number"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Responsible       string       `json:"responsible"`
	Duration          string       `json:"duration,omitempty"`
	RelatedContentIDs []string     `json:"related_content_ids"`
	RelatedContent    []ContentRef `json:"related_content,omitempty"`
}

type ProcessView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Departments  []string   `json:"departments"`
	AllowedRoles string     `json:"allowed_roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Steps        []StepView `json:"steps"`
}

// Resolver собирает материализованное представление бизнес-процесса:
// шаги в порядке StepNumber, для каждого шага — ссылки на существующие
// материалы в порядке исходного списка id
type Resolver struct {
	store Store
}

func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// Process возвращает полный вид процесса для роли requester.
// Порядок ошибок фиксированный: сначала NotFound, затем Forbidden,
// и только потом разбор шагов.
func (r *Resolver) Process(ctx context.Context, id string, requester role.Role) (*ProcessView, error) {
	process, err := r.store.ProcessByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if process == nil {
		return nil, ErrNotFound
	}
	if !access.IsVisible(process.AllowedRoles, requester) {
		return nil, ErrForbidden
	}

	// Один батч-запрос на все ссылки всех шагов
	var ids []string
	seen := make(map[string]bool)
	for _, step := range process.Steps {
		for _, cid := range step.RelatedContentIDs {
			if !seen[cid] {
				seen[cid] = true
				ids = append(ids, cid)
			}
		}
	}

	contentMap := make(map[string]ds.Content)
	if len(ids) > 0 {
		contents, err := r.store.ContentByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, c := range contents {
			contentMap[c.ID] = c
		}
	}

	view := summarize(*process)
	for i, step := range process.Steps {
		refs := make([]ContentRef, 0, len(step.RelatedContentIDs))
		for _, cid := range step.RelatedContentIDs {
			c, ok := contentMap[cid]
			if !ok {
				// битая ссылка — материал удалён, пропускаем
				continue
			}
			refs = append(refs, ContentRef{
				ID:       c.ID,
				Title:    c.Title,
				Type:     c.Type,
				Duration: c.Duration,
			})
		}
		view.Steps[i].RelatedContent = refs
	}
	return &view, nil
}

// List возвращает сводки процессов, видимых роли requester, новые первыми.
// Ссылки шагов до материалов не разворачиваются — только списки id.
func (r *Resolver) List(ctx context.Context, requester role.Role) ([]ProcessView, error) {
	processes, err := r.store.ProcessList(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProcessView, 0, len(processes))
	for _, p := range processes {
		if !access.IsVisible(p.AllowedRoles, requester) {
			continue
		}
		views = append(views, summarize(p))
	}
	return views, nil
}

// summarize декодирует сериализованные поля процесса в сводку без
// разворачивания ссылок на материалы
func summarize(p ds.BusinessProcess) ProcessView {
	steps := make([]StepView, len(p.Steps))
	for i, s := range p.Steps {
		ids := make([]string, len(s.RelatedContentIDs))
		copy(ids, s.RelatedContentIDs)
		steps[i] = StepView{
			StepNumber:        s.StepNumber,
			Title:             s.Title,
			Description:       s.Description,
			Responsible:       s.Responsible,
			Duration:          s.Duration,
			RelatedContentIDs: ids,
		}
	}
	departments := make([]string, len(p.Departments))
	copy(departments, p.Departments)
	return ProcessView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Departments:  departments,
		AllowedRoles: p.AllowedRoles,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Steps:        steps,
	}
}
