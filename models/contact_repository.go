package models

import (
	"errors"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) GetAll() ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ContactRepository) GetByID(id uint) (*ContactMessage, error) {
	var message ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *ContactRepository) Create(message *ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *ContactRepository) UpdateStatus(id uint, status string) (*ContactMessage, error) {
	res := r.db.Model(&ContactMessage{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrMessageNotFound
	}
	return r.GetByID(id)
}

func (r *ContactRepository) Delete(id uint) error {
	res := r.db.Delete(&ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
