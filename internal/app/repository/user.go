package repository

import (
	"errors"

	"gorm.io/gorm"

	"portal/internal/app/ds"
	"portal/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) CreateUser(email, passwordHash, name string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Email:    email,
		Password: passwordHash,
		Name:     name,
		Role:     userRole,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
