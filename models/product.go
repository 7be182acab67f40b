package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item in the storefront.
// Price and stock are live values; orders snapshot the price into their
// line items at creation time.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"not null"`
	Description   string
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID    *uint
	Category      *Category `gorm:"foreignKey:CategoryID"`
	StockQuantity int       `gorm:"not null;default:0"`
	ImageURL      string
	SKU           string `gorm:"column:sku;uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p *Product) TableName() string {
	return "products"
}
