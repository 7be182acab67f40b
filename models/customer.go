package models

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) TableName() string {
	return "customers"
}
