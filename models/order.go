package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. The status column is free text in the schema; handlers
// validate against this set before writing.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer purchase identified by a unique business order
// number. TotalAmount tracks the sum of line totals only through the
// explicit recompute operation; item mutations do not touch it.
type Order struct {
	ID              uint  `gorm:"primaryKey"`
	CustomerID      *uint
	OrderNumber     string          `gorm:"uniqueIndex;not null"`
	Status          string          `gorm:"not null;default:pending"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ShippingAddress string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. UnitPrice and TotalPrice are
// snapshots taken at order time and stay fixed when the product's live
// price changes later.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"not null"`
	ProductID *uint
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (i *OrderItem) TableName() string {
	return "order_items"
}

// OrderWithCustomer is an order row joined with the referenced customer's
// contact fields, as the listing endpoints return it. The customer fields
// are nil when the weak reference points nowhere.
type OrderWithCustomer struct {
	Order         `gorm:"embedded"`
	CustomerName  *string
	CustomerEmail *string
}

// OrderItemWithProduct is an order item joined with the product's current
// name for display. ProductName is nil when the product has been deleted.
type OrderItemWithProduct struct {
	OrderItem   `gorm:"embedded"`
	ProductName *string
}
