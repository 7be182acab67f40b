package models

import "time"

// Category groups products for filtering and reporting.
// Products reference it weakly: deleting a category detaches its products
// rather than removing them.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	CreatedAt   time.Time
}

func (c *Category) TableName() string {
	return "categories"
}
