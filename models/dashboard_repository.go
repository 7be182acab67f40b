package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository issues the aggregate queries behind the admin
// dashboard. It reads the domain tables directly; each metric is its own
// round-trip and any failing query fails the whole composition.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		db: db,
	}
}

type DashboardStats struct {
	TotalCustomers  int64
	TotalProducts   int64
	TotalOrders     int64
	TotalRevenue    decimal.Decimal
	TotalStock      int64
	PendingOrders   int64
	UnreadMessages  int64
	AvgOrderValue   decimal.Decimal
	RevenueChange   string
	OrdersChange    string
	CustomersChange string
}

type CategorySales struct {
	Name  string
	Value decimal.Decimal
}

type MonthlyPerformance struct {
	Month   string
	SortKey string
	Orders  int64
	Revenue decimal.Decimal
}

type StatusCount struct {
	Name  string
	Value int64
}

type TopProduct struct {
	ID           uint
	Name         string
	Price        decimal.Decimal
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

type LowStockProduct struct {
	ID            uint
	Name          string
	StockQuantity int
	Price         decimal.Decimal
}

func (r *DashboardRepository) count(query string, args ...interface{}) (int64, error) {
	var n int64
	err := r.db.Raw(query, args...).Scan(&n).Error
	return n, err
}

func (r *DashboardRepository) sum(query string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Raw(query, args...).Scan(&total).Error
	return total, err
}

// Stats composes the headline metrics plus rolling month-over-month
// change figures for revenue, orders and customers. The windows are
// relative to now, not calendar-aligned.
func (r *DashboardRepository) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalCustomers, err = r.count(`SELECT COUNT(*) FROM customers`); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = r.count(`SELECT COUNT(*) FROM products`); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = r.count(`SELECT COUNT(*) FROM orders`); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = r.sum(
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled'`); err != nil {
		return nil, err
	}
	if stats.PendingOrders, err = r.count(
		`SELECT COUNT(*) FROM orders WHERE status = 'pending'`); err != nil {
		return nil, err
	}
	if stats.UnreadMessages, err = r.count(
		`SELECT COUNT(*) FROM contact_messages WHERE status = 'unread'`); err != nil {
		return nil, err
	}
	var stock decimal.Decimal
	if stock, err = r.sum(`SELECT COALESCE(SUM(stock_quantity), 0) FROM products`); err != nil {
		return nil, err
	}
	stats.TotalStock = stock.IntPart()

	stats.AvgOrderValue = AverageOrderValue(stats.TotalRevenue, stats.TotalOrders)

	lastRevenue, err := r.sum(`
		SELECT COALESCE(SUM(total_amount), 0) FROM orders
		WHERE status != 'cancelled'
		AND created_at >= now() - interval '2 month'
		AND created_at < now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}
	thisRevenue, err := r.sum(`
		SELECT COALESCE(SUM(total_amount), 0) FROM orders
		WHERE status != 'cancelled'
		AND created_at >= now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}

	lastOrders, err := r.count(`
		SELECT COUNT(*) FROM orders
		WHERE created_at >= now() - interval '2 month'
		AND created_at < now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}
	thisOrders, err := r.count(`
		SELECT COUNT(*) FROM orders
		WHERE created_at >= now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}

	lastCustomers, err := r.count(`
		SELECT COUNT(*) FROM customers
		WHERE created_at >= now() - interval '2 month'
		AND created_at < now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}
	thisCustomers, err := r.count(`
		SELECT COUNT(*) FROM customers
		WHERE created_at >= now() - interval '1 month'`)
	if err != nil {
		return nil, err
	}

	stats.RevenueChange = PercentChange(thisRevenue, lastRevenue)
	stats.OrdersChange = PercentChange(decimal.NewFromInt(thisOrders), decimal.NewFromInt(lastOrders))
	stats.CustomersChange = PercentChange(decimal.NewFromInt(thisCustomers), decimal.NewFromInt(lastCustomers))

	return stats, nil
}

// SalesByCategory sums non-cancelled line totals per category. Orphaned
// products fall into "Uncategorized"; an empty result is returned as-is
// and the handler supplies the placeholder row.
func (r *DashboardRepository) SalesByCategory() ([]CategorySales, error) {
	var sales []CategorySales
	err := r.db.Raw(`
		SELECT
			COALESCE(c.name, 'Uncategorized') AS name,
			COALESCE(SUM(oi.total_price), 0) AS value
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status != 'cancelled'
		GROUP BY c.id, c.name
		ORDER BY value DESC`).Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *DashboardRepository) MonthlyPerformance() ([]MonthlyPerformance, error) {
	var months []MonthlyPerformance
	err := r.db.Raw(`
		SELECT
			to_char(created_at, 'Mon') AS month,
			to_char(created_at, 'YYYY-MM') AS sort_key,
			COUNT(*) AS orders,
			COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE created_at >= now() - interval '6 month'
		AND status != 'cancelled'
		GROUP BY to_char(created_at, 'YYYY-MM'), to_char(created_at, 'Mon')
		ORDER BY sort_key ASC`).Scan(&months).Error
	if err != nil {
		return nil, err
	}
	return months, nil
}

func (r *DashboardRepository) OrderStatusCounts() ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Raw(`
		SELECT status AS name, COUNT(*) AS value
		FROM orders
		GROUP BY status`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *DashboardRepository) TopProducts() ([]TopProduct, error) {
	var products []TopProduct
	err := r.db.Raw(`
		SELECT
			p.id,
			p.name,
			p.price,
			SUM(oi.quantity) AS total_sold,
			SUM(oi.total_price) AS total_revenue
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status != 'cancelled'
		GROUP BY p.id, p.name, p.price
		ORDER BY total_sold DESC
		LIMIT 5`).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *DashboardRepository) RecentOrders() ([]OrderWithCustomer, error) {
	var orders []OrderWithCustomer
	err := r.db.Raw(orderListQuery + `
		ORDER BY o.created_at DESC
		LIMIT 5`).Scan(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *DashboardRepository) LowStockProducts() ([]LowStockProduct, error) {
	var products []LowStockProduct
	err := r.db.Raw(`
		SELECT id, name, stock_quantity, price
		FROM products
		WHERE stock_quantity < 10
		ORDER BY stock_quantity ASC
		LIMIT 5`).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
