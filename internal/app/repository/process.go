package repository

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portal/internal/app/ds"
)

// StepInput — данные шага при создании или замене шагов процесса.
// Порядковый номер не принимается: позиция в массиве авторитетна.
type StepInput struct {
	Title             string
	Description       string
	Responsible       string
	Duration          string
	RelatedContentIDs []string
}

// Методы для бизнес-процессов

// ProcessByID возвращает процесс с шагами по возрастанию step_number
// или nil, если процесса нет
func (r *Repository) ProcessByID(ctx context.Context, id string) (*ds.BusinessProcess, error) {
	var process ds.BusinessProcess
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Where("id = ?", id).
		First(&process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &process, nil
}

// ProcessList возвращает все процессы с шагами, новые первыми
func (r *Repository) ProcessList(ctx context.Context) ([]ds.BusinessProcess, error) {
	var processes []ds.BusinessProcess
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Order("created_at DESC").
		Find(&processes).Error
	if err != nil {
		return nil, err
	}
	return processes, nil
}

// CreateProcess создаёт процесс с шагами, номера шагов назначаются
// по позиции во входном массиве (1-based)
func (r *Repository) CreateProcess(name, description string, departments []string, allowedRoles string, steps []StepInput) (*ds.BusinessProcess, error) {
	process := ds.BusinessProcess{
		Name:         name,
		Description:  description,
		Departments:  datatypes.NewJSONSlice(departments),
		AllowedRoles: allowedRoles,
		Steps:        buildSteps("", steps),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&process).Error
	})
	if err != nil {
		return nil, err
	}

	return r.ProcessByID(context.Background(), process.ID)
}

// ReplaceProcess обновляет поля процесса и целиком заменяет его шаги.
// Старые шаги удаляются и вставляются заново в одной транзакции, чтобы
// параллельный читатель не увидел процесс без шагов.
func (r *Repository) ReplaceProcess(ctx context.Context, id, name, description string, departments []string, allowedRoles *string, steps []StepInput) (*ds.BusinessProcess, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var process ds.BusinessProcess
		if err := tx.Where("id = ?", id).First(&process).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":        name,
			"description": description,
			"departments": datatypes.NewJSONSlice(departments),
		}
		if allowedRoles != nil {
			updates["allowed_roles"] = *allowedRoles
		}
		if err := tx.Model(&process).Updates(updates).Error; err != nil {
			return err
		}

		// Протокол замены: удалить все старые шаги, записать новые
		if err := tx.Where("process_id = ?", id).Delete(&ds.ProcessStep{}).Error; err != nil {
			return err
		}

		newSteps := buildSteps(id, steps)
		if len(newSteps) == 0 {
			return nil
		}
		return tx.Create(&newSteps).Error
	})
	if err != nil {
		return nil, err
	}

	return r.ProcessByID(ctx, id)
}

func (r *Repository) DeleteProcess(id string) error {
	// Шаги удалятся каскадом по внешнему ключу
	result := r.db.Where("id = ?", id).Delete(&ds.BusinessProcess{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// buildSteps нумерует шаги по позиции во входном массиве
func buildSteps(processID string, steps []StepInput) []ds.ProcessStep {
	out := make([]ds.ProcessStep, len(steps))
	for i, s := range steps {
		ids := s.RelatedContentIDs
		if ids == nil {
			ids = []string{}
		}
		out[i] = ds.ProcessStep{
			ProcessID:         processID,
			StepNumber:        i + 1,
			Title:             s.Title,
			Description:       s.Description,
			Responsible:       s.Responsible,
			Duration:          s.Duration,
			RelatedContentIDs: datatypes.NewJSONSlice(ids),
		}
	}
	return out
}
