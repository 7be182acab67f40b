package models

import (
	"errors"

	"gorm.io/gorm"
)

type UsersRepository struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *UsersRepository {
	return &UsersRepository{
		db: db,
	}
}

// FindActiveByUsername looks up an active account for login. Disabled
// accounts are indistinguishable from missing ones.
func (r *UsersRepository) FindActiveByUsername(username string) (*User, error) {
	var user User
	err := r.db.Where("username = ? AND is_active = true", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
