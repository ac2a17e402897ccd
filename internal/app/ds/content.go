package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Типы обучающих материалов
const (
	ContentTypeVideo       = "video"
	ContentTypeArticle     = "article"
	ContentTypeInstruction = "instruction"
)

// 3. Таблица обучающих материалов (видео, статьи, инструкции)
type Content struct {
	ID          string    `gorm:"type:varchar(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CategoryID  string    `gorm:"type:varchar(36);not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"` // video, article, instruction
	Duration    string    `gorm:"type:varchar(20)"`
	Thumbnail   string    `gorm:"type:varchar(255)"` // имя файла в MinIO
	VideoURL    string    `gorm:"type:varchar(255)"`
	Body        string    `gorm:"type:text"` // текст статьи или инструкции
	Views       int       `gorm:"default:0;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

func (c *Content) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
