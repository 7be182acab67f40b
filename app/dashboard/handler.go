package dashboard

import (
	"net/http"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

// StatsResponse mirrors what the dashboard's metric cards consume. The
// change figures are pre-formatted strings, "0" when there is no prior
// month to compare against.
type StatsResponse struct {
	TotalCustomers  int64   `json:"totalCustomers"`
	TotalProducts   int64   `json:"totalProducts"`
	TotalOrders     int64   `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalStock      int64   `json:"totalStock"`
	PendingOrders   int64   `json:"pendingOrders"`
	UnreadMessages  int64   `json:"unreadMessages"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	RevenueChange   string  `json:"revenueChange"`
	OrdersChange    string  `json:"ordersChange"`
	CustomersChange string  `json:"customersChange"`
}

type CategorySalesResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MonthlyPerformanceResponse struct {
	Month   string  `json:"month"`
	SortKey string  `json:"sort_key"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type StatusCountResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type TopProductResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	TotalSold    int64   `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RecentOrderResponse struct {
	ID            uint    `json:"id"`
	OrderNumber   string  `json:"order_number"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	CustomerName  *string `json:"customer_name"`
	CustomerEmail *string `json:"customer_email"`
}

type LowStockResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	StockQuantity int     `json:"stock_quantity"`
	Price         float64 `json:"price"`
}

type StatsProvider interface {
	Stats() (*models.DashboardStats, error)
	SalesByCategory() ([]models.CategorySales, error)
	MonthlyPerformance() ([]models.MonthlyPerformance, error)
	OrderStatusCounts() ([]models.StatusCount, error)
	TopProducts() ([]models.TopProduct, error)
	RecentOrders() ([]models.OrderWithCustomer, error)
	LowStockProducts() ([]models.LowStockProduct, error)
}

type DashboardHandler struct {
	repo StatsProvider
}

func NewDashboardHandler(r StatsProvider) *DashboardHandler {
	return &DashboardHandler{
		repo: r,
	}
}

func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/dashboard/stats", h.HandleStats)
	mux.HandleFunc("GET /api/dashboard/sales-by-category", h.HandleSalesByCategory)
	mux.HandleFunc("GET /api/dashboard/monthly-performance", h.HandleMonthlyPerformance)
	mux.HandleFunc("GET /api/dashboard/order-status", h.HandleOrderStatus)
	mux.HandleFunc("GET /api/dashboard/top-products", h.HandleTopProducts)
	mux.HandleFunc("GET /api/dashboard/recent-orders", h.HandleRecentOrders)
	mux.HandleFunc("GET /api/dashboard/low-stock", h.HandleLowStock)
}

func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.Stats()
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, StatsResponse{
		TotalCustomers:  stats.TotalCustomers,
		TotalProducts:   stats.TotalProducts,
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue.InexactFloat64(),
		TotalStock:      stats.TotalStock,
		PendingOrders:   stats.PendingOrders,
		UnreadMessages:  stats.UnreadMessages,
		AvgOrderValue:   stats.AvgOrderValue.InexactFloat64(),
		RevenueChange:   stats.RevenueChange,
		OrdersChange:    stats.OrdersChange,
		CustomersChange: stats.CustomersChange,
	})
}

func (h *DashboardHandler) HandleSalesByCategory(w http.ResponseWriter, r *http.Request) {
	sales, err := h.repo.SalesByCategory()
	if err != nil {
		api.Error(w, err)
		return
	}

	// A chart with no slices renders poorly, so an empty result becomes
	// one placeholder row.
	if len(sales) == 0 {
		api.RespondJSON(w, http.StatusOK, []CategorySalesResponse{
			{Name: "No sales data", Value: 0},
		})
		return
	}

	response := make([]CategorySalesResponse, len(sales))
	for i, s := range sales {
		response[i] = CategorySalesResponse{
			Name:  s.Name,
			Value: s.Value.InexactFloat64(),
		}
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) HandleMonthlyPerformance(w http.ResponseWriter, r *http.Request) {
	months, err := h.repo.MonthlyPerformance()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]MonthlyPerformanceResponse, len(months))
	for i, m := range months {
		response[i] = MonthlyPerformanceResponse{
			Month:   m.Month,
			SortKey: m.SortKey,
			Orders:  m.Orders,
			Revenue: m.Revenue.InexactFloat64(),
		}
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.OrderStatusCounts()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]StatusCountResponse, len(counts))
	for i, c := range counts {
		response[i] = StatusCountResponse{Name: c.Name, Value: c.Value}
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) HandleTopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.TopProducts()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]TopProductResponse, len(products))
	for i, p := range products {
		response[i] = TopProductResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price.InexactFloat64(),
			TotalSold:    p.TotalSold,
			TotalRevenue: p.TotalRevenue.InexactFloat64(),
		}
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) HandleRecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.RecentOrders()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]RecentOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = RecentOrderResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			Status:        o.Status,
			TotalAmount:   o.TotalAmount.InexactFloat64(),
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
		}
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *DashboardHandler) HandleLowStock(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.LowStockProducts()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]LowStockResponse, len(products))
	for i, p := range products {
		response[i] = LowStockResponse{
			ID:            p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			Price:         p.Price.InexactFloat64(),
		}
	}
	api.RespondJSON(w, http.StatusOK, response)
}
