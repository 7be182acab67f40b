package models

import (
	"errors"

	"gorm.io/gorm"
)

type ReviewsRepository struct {
	db *gorm.DB
}

func NewReviewsRepository(db *gorm.DB) *ReviewsRepository {
	return &ReviewsRepository{
		db: db,
	}
}

type ReviewFilters struct {
	ProductID   *uint
	PendingOnly bool
}

func (r *ReviewsRepository) GetFiltered(offset, limit int, filters ReviewFilters) ([]Review, int64, error) {
	var reviews []Review
	var total int64

	query := r.db.Model(&Review{})
	if filters.ProductID != nil {
		query = query.Where("product_id = ?", *filters.ProductID)
	}
	if filters.PendingOnly {
		query = query.Where("is_approved = false")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewsRepository) GetByID(id uint) (*Review, error) {
	var review Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewsRepository) Create(review *Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewsRepository) SetApproved(id uint, approved bool) (*Review, error) {
	res := r.db.Model(&Review{}).Where("id = ?", id).Update("is_approved", approved)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}
	return r.GetByID(id)
}

func (r *ReviewsRepository) IncrementHelpful(id uint) (*Review, error) {
	res := r.db.Model(&Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}
	return r.GetByID(id)
}

func (r *ReviewsRepository) Delete(id uint) error {
	res := r.db.Delete(&Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
