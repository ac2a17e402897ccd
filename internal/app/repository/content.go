package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portal/internal/app/ds"
)

// Методы для обучающих материалов

// ContentList возвращает материалы, новые первыми, с необязательной
// фильтрацией по категории и типу
func (r *Repository) ContentList(categoryID, contentType string) ([]ds.Content, error) {
	query := r.db.Order("created_at DESC")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if contentType != "" {
		query = query.Where("type = ?", contentType)
	}

	var contents []ds.Content
	err := query.Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// ContentByID возвращает материал или nil, если его нет
func (r *Repository) ContentByID(id string) (*ds.Content, error) {
	var content ds.Content
	err := r.db.Where("id = ?", id).First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// ContentByIDs возвращает существующие материалы по списку id.
// Отсутствующие id не ошибка — их просто нет в результате.
func (r *Repository) ContentByIDs(ctx context.Context, ids []string) ([]ds.Content, error) {
	if len(ids) == 0 {
		return []ds.Content{}, nil
	}

	var contents []ds.Content
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *Repository) CreateContent(content *ds.Content) error {
	return r.db.Create(content).Error
}

// UpdateContent применяет частичное обновление
func (r *Repository) UpdateContent(id string, updates map[string]interface{}) (*ds.Content, error) {
	content, err := r.ContentByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, gorm.ErrRecordNotFound
	}

	if len(updates) > 0 {
		err = r.db.Model(content).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.ContentByID(id)
}

func (r *Repository) DeleteContent(id string) error {
	result := r.db.Where("id = ?", id).Delete(&ds.Content{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews увеличивает счётчик просмотров на 1
func (r *Repository) IncrementViews(id string) (*ds.Content, error) {
	result := r.db.Model(&ds.Content{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.ContentByID(id)
}

// SetThumbnail сохраняет имя файла обложки в MinIO
func (r *Repository) SetThumbnail(id, filename string) error {
	result := r.db.Model(&ds.Content{}).Where("id = ?", id).
		UpdateColumn("thumbnail", filename)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
