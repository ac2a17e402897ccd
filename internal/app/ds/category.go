package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 2. Таблица категорий обучающих материалов
type Category struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Slug        string    `gorm:"type:varchar(100);unique;not null"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(50);default:'folder'"`
	// Политика доступа: список ролей через запятую, пусто или "all" — без ограничений
	AllowedRoles string    `gorm:"type:varchar(255);default:''"`
	CreatedAt    time.Time `gorm:"not null"`

	// Удаление категории каскадно удаляет её материалы
	Contents []Content `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
