package orders

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type OrderResponse struct {
	ID              uint      `json:"id"`
	CustomerID      *uint     `json:"customer_id"`
	CustomerName    *string   `json:"customer_name,omitempty"`
	CustomerEmail   *string   `json:"customer_email,omitempty"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	TotalAmount     float64   `json:"total_amount"`
	ShippingAddress string    `json:"shipping_address"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OrderItemResponse struct {
	ID          uint    `json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   *uint   `json:"product_id"`
	ProductName *string `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

type OrderProvider interface {
	GetAll(filters models.OrderFilters) ([]models.OrderWithCustomer, error)
	GetByID(id uint) (*models.OrderWithCustomer, []models.OrderItemWithProduct, error)
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	Update(id uint, patch models.OrderPatch) (*models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
	RecomputeTotal(id uint) (*models.Order, error)
	Delete(id uint) error
}

type OrdersHandler struct {
	repo OrderProvider
}

func NewOrdersHandler(r OrderProvider) *OrdersHandler {
	return &OrdersHandler{
		repo: r,
	}
}

func (h *OrdersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/orders", h.HandleGetAll)
	mux.HandleFunc("GET /api/orders/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/orders", h.HandleCreate)
	mux.HandleFunc("PUT /api/orders/{id}", h.HandleUpdate)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.HandleUpdateStatus)
	mux.HandleFunc("POST /api/orders/{id}/recompute-total", h.HandleRecomputeTotal)
	mux.HandleFunc("DELETE /api/orders/{id}", h.HandleDelete)
}

func toOrderResponse(o *models.OrderWithCustomer) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toBareOrderResponse(o *models.Order) OrderResponse {
	return toOrderResponse(&models.OrderWithCustomer{Order: *o})
}

func toItemResponse(i *models.OrderItemWithProduct) OrderItemResponse {
	return OrderItemResponse{
		ID:          i.ID,
		OrderID:     i.OrderID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.InexactFloat64(),
		TotalPrice:  i.TotalPrice.InexactFloat64(),
	}
}

func (h *OrdersHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	filters := models.OrderFilters{
		Status: r.URL.Query().Get("status"),
	}
	if filters.Status != "" && !models.ValidOrderStatus(filters.Status) {
		api.BadRequest(w, "unknown status")
		return
	}
	if cStr := r.URL.Query().Get("customer"); cStr != "" {
		c, err := strconv.ParseUint(cStr, 10, 64)
		if err != nil {
			api.BadRequest(w, "invalid customer filter")
			return
		}
		id := uint(c)
		filters.CustomerID = &id
	}

	orders, err := h.repo.GetAll(filters)
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = toOrderResponse(&orders[i])
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *OrdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid order id")
		return
	}

	order, items, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}

	detail := OrderDetailResponse{
		OrderResponse: toOrderResponse(order),
		Items:         make([]OrderItemResponse, len(items)),
	}
	for i := range items {
		detail.Items[i] = toItemResponse(&items[i])
	}
	api.RespondJSON(w, http.StatusOK, detail)
}

type orderItemInput struct {
	ProductID  *uint   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type orderInput struct {
	CustomerID      *uint            `json:"customer_id"`
	OrderNumber     string           `json:"order_number"`
	Status          string           `json:"status"`
	TotalAmount     float64          `json:"total_amount"`
	ShippingAddress string           `json:"shipping_address"`
	Notes           string           `json:"notes"`
	Items           []orderItemInput `json:"items"`
}

// HandleCreate persists the order and every line item in one
// transaction. Either the full order becomes visible or nothing does.
func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input orderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.OrderNumber == "" {
		api.BadRequest(w, "missing order_number")
		return
	}
	if input.Status == "" {
		input.Status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(input.Status) {
		api.BadRequest(w, "unknown status")
		return
	}
	if input.TotalAmount < 0 {
		api.BadRequest(w, "total_amount cannot be negative")
		return
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			api.BadRequest(w, "item quantity must be positive")
			return
		}
	}

	order := &models.Order{
		CustomerID:      input.CustomerID,
		OrderNumber:     input.OrderNumber,
		Status:          input.Status,
		TotalAmount:     decimal.NewFromFloat(input.TotalAmount),
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}
	// Items keep their input order; a repeated product is a repeated row.
	items := make([]models.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = models.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  decimal.NewFromFloat(item.UnitPrice),
			TotalPrice: decimal.NewFromFloat(item.TotalPrice),
		}
	}

	if err := h.repo.CreateWithItems(order, items); err != nil {
		api.Error(w, err)
		return
	}

	created, createdItems, err := h.repo.GetByID(order.ID)
	if err != nil {
		api.Error(w, err)
		return
	}
	detail := OrderDetailResponse{
		OrderResponse: toOrderResponse(created),
		Items:         make([]OrderItemResponse, len(createdItems)),
	}
	for i := range createdItems {
		detail.Items[i] = toItemResponse(&createdItems[i])
	}
	api.RespondJSON(w, http.StatusCreated, detail)
}

func (h *OrdersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid order id")
		return
	}

	var input struct {
		CustomerID      api.OptionalUint `json:"customer_id"`
		OrderNumber     *string          `json:"order_number"`
		Status          *string          `json:"status"`
		TotalAmount     *float64         `json:"total_amount"`
		ShippingAddress *string          `json:"shipping_address"`
		Notes           *string          `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.OrderNumber != nil && *input.OrderNumber == "" {
		api.BadRequest(w, "order_number cannot be empty")
		return
	}
	if input.Status != nil && !models.ValidOrderStatus(*input.Status) {
		api.BadRequest(w, "unknown status")
		return
	}
	if input.TotalAmount != nil && *input.TotalAmount < 0 {
		api.BadRequest(w, "total_amount cannot be negative")
		return
	}

	patch := models.OrderPatch{
		OrderNumber:     input.OrderNumber,
		Status:          input.Status,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}
	if input.CustomerID.Set {
		ref := input.CustomerID.Ref()
		patch.CustomerID = &ref
	}
	if input.TotalAmount != nil {
		total := decimal.NewFromFloat(*input.TotalAmount)
		patch.TotalAmount = &total
	}

	order, err := h.repo.Update(id, patch)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toBareOrderResponse(order))
}

func (h *OrdersHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid order id")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		api.BadRequest(w, "unknown status")
		return
	}

	order, err := h.repo.UpdateStatus(id, input.Status)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toBareOrderResponse(order))
}

// HandleRecomputeTotal resets the order's aggregate total from its items'
// stored line totals. Line items are never rewritten.
func (h *OrdersHandler) HandleRecomputeTotal(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid order id")
		return
	}

	order, err := h.repo.RecomputeTotal(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toBareOrderResponse(order))
}

func (h *OrdersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid order id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}
