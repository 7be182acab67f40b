package models

import "time"

// Review is a customer's product rating. Reviews start unapproved and
// only show up in storefront listings once moderated.
type Review struct {
	ID                 uint `gorm:"primaryKey"`
	ProductID          uint `gorm:"not null"`
	CustomerID         uint `gorm:"not null"`
	OrderID            *uint
	Rating             int `gorm:"not null"`
	Title              string
	Comment            string
	IsVerifiedPurchase bool `gorm:"not null;default:false"`
	IsApproved         bool `gorm:"not null;default:false"`
	HelpfulCount       int  `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r *Review) TableName() string {
	return "reviews"
}
