package repository

import (
	"errors"

	"gorm.io/gorm"

	"portal/internal/app/ds"
)

// Методы для категорий

// GetCategories возвращает все категории по алфавиту
func (r *Repository) GetCategories() ([]ds.Category, error) {
	var categories []ds.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ContentCountByCategory возвращает количество материалов в каждой категории
func (r *Repository) ContentCountByCategory() (map[string]int64, error) {
	// Используем курсор по агрегирующему запросу
	rows, err := r.db.Raw(`SELECT category_id, COUNT(*) FROM contents GROUP BY category_id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var categoryID string
		var count int64
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, err
		}
		counts[categoryID] = count
	}
	return counts, rows.Err()
}

// GetCategoryBySlug возвращает категорию или nil, если её нет
func (r *Repository) GetCategoryBySlug(slug string) (*ds.Category, error) {
	var category ds.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *Repository) CreateCategory(slug, name, description, icon, allowedRoles string) (*ds.Category, error) {
	category := ds.Category{
		Slug:         slug,
		Name:         name,
		Description:  description,
		Icon:         icon,
		AllowedRoles: allowedRoles,
	}

	err := r.db.Create(&category).Error
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// UpdateCategory применяет частичное обновление по slug
func (r *Repository) UpdateCategory(slug string, updates map[string]interface{}) (*ds.Category, error) {
	category, err := r.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, gorm.ErrRecordNotFound
	}

	if len(updates) > 0 {
		err = r.db.Model(category).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetCategoryBySlug(slug)
}

// DeleteCategory удаляет категорию вместе с её материалами (каскад).
// Возвращает имя категории и количество удалённых материалов.
func (r *Repository) DeleteCategory(slug string) (string, int64, error) {
	var name string
	var contentCount int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var category ds.Category
		if err := tx.Where("slug = ?", slug).First(&category).Error; err != nil {
			return err
		}
		name = category.Name

		if err := tx.Model(&ds.Content{}).Where("category_id = ?", category.ID).Count(&contentCount).Error; err != nil {
			return err
		}

		// Материалы удалятся каскадом по внешнему ключу
		return tx.Delete(&category).Error
	})
	if err != nil {
		return "", 0, err
	}

	return name, contentCount, nil
}
