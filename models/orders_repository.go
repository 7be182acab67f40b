package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

type OrderFilters struct {
	Status     string
	CustomerID *uint
}

type OrderPatch struct {
	CustomerID      **uint
	OrderNumber     *string
	Status          *string
	TotalAmount     *decimal.Decimal
	ShippingAddress *string
	Notes           *string
}

const orderListQuery = `
	SELECT o.*, c.name AS customer_name, c.email AS customer_email
	FROM orders o
	LEFT JOIN customers c ON o.customer_id = c.id`

func (r *OrdersRepository) GetAll(filters OrderFilters) ([]OrderWithCustomer, error) {
	query := orderListQuery
	args := []interface{}{}

	switch {
	case filters.Status != "" && filters.CustomerID != nil:
		query += " WHERE o.status = ? AND o.customer_id = ?"
		args = append(args, filters.Status, *filters.CustomerID)
	case filters.Status != "":
		query += " WHERE o.status = ?"
		args = append(args, filters.Status)
	case filters.CustomerID != nil:
		query += " WHERE o.customer_id = ?"
		args = append(args, *filters.CustomerID)
	}
	query += " ORDER BY o.created_at DESC"

	var orders []OrderWithCustomer
	if err := r.db.Raw(query, args...).Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrdersRepository) GetByID(id uint) (*OrderWithCustomer, []OrderItemWithProduct, error) {
	var order OrderWithCustomer
	res := r.db.Raw(orderListQuery+" WHERE o.id = ?", id).Scan(&order)
	if res.Error != nil {
		return nil, nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil, ErrOrderNotFound
	}

	items, err := r.GetItems(id)
	if err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

func (r *OrdersRepository) GetItems(orderID uint) ([]OrderItemWithProduct, error) {
	var items []OrderItemWithProduct
	err := r.db.Raw(`
		SELECT oi.*, p.name AS product_name
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ?
		ORDER BY oi.id`, orderID).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateWithItems persists an order and all of its line items in one
// transaction. Items are inserted in input order; a repeated product
// yields a repeated row. Any failed insert rolls the whole order back.
func (r *OrdersRepository) CreateWithItems(order *Order, items []OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OrdersRepository) Update(id uint, patch OrderPatch) (*Order, error) {
	updates := map[string]interface{}{}
	if patch.CustomerID != nil {
		updates["customer_id"] = *patch.CustomerID
	}
	if patch.OrderNumber != nil {
		updates["order_number"] = *patch.OrderNumber
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.TotalAmount != nil {
		updates["total_amount"] = *patch.TotalAmount
	}
	if patch.ShippingAddress != nil {
		updates["shipping_address"] = *patch.ShippingAddress
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		res := r.db.Model(&Order{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrOrderNotFound
		}
	}
	return r.getOrder(id)
}

func (r *OrdersRepository) UpdateStatus(id uint, status string) (*Order, error) {
	res := r.db.Model(&Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}
	return r.getOrder(id)
}

// Delete removes an order together with its items; items are owned by the
// order and never outlive it.
func (r *OrdersRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}

// RecomputeTotal resets an order's total to the sum of its current items'
// stored line totals (0 with no items). Line items themselves are never
// rewritten; their price snapshots stay historical.
func (r *OrdersRepository) RecomputeTotal(id uint) (*Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var total decimal.Decimal
		if err := tx.Raw(`
			SELECT COALESCE(SUM(total_price), 0)
			FROM order_items
			WHERE order_id = ?`, id).Scan(&total).Error; err != nil {
			return err
		}
		res := tx.Model(&Order{}).Where("id = ?", id).Update("total_amount", total)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.getOrder(id)
}

func (r *OrdersRepository) getOrder(id uint) (*Order, error) {
	var order Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}
