package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portal/internal/app/role"
)

// 1. Таблица пользователей
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Email     string    `gorm:"type:varchar(100);unique;not null"`
	Password  string    `gorm:"type:varchar(255);not null"` // bcrypt-хеш
	Name      string    `gorm:"type:varchar(100)"`
	Role      role.Role `gorm:"type:varchar(30);default:'user';not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
