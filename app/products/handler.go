package products

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type ProductResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CategoryID    *uint     `json:"category_id"`
	CategoryName  *string   `json:"category_name"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	SKU           string    `json:"sku"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ProductProvider interface {
	GetAll(filters models.ProductFilters) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(id uint, patch models.ProductPatch) (*models.Product, error)
	Delete(id uint) error
	AdjustStock(id uint, delta int) (*models.Product, error)
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{
		repo: r,
	}
}

func (h *ProductsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.HandleGetAll)
	mux.HandleFunc("GET /api/products/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/products", h.HandleCreate)
	mux.HandleFunc("PUT /api/products/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/products/{id}", h.HandleDelete)
	mux.HandleFunc("POST /api/products/{id}/stock", h.HandleAdjustStock)
}

func toResponse(p *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		CategoryID:    p.CategoryID,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		SKU:           p.SKU,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Category != nil {
		name := p.Category.Name
		resp.CategoryName = &name
	}
	return resp
}

func (h *ProductsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	filters := models.ProductFilters{
		Search: r.URL.Query().Get("q"),
	}
	if cStr := r.URL.Query().Get("category"); cStr != "" {
		c, err := strconv.ParseUint(cStr, 10, 64)
		if err != nil {
			api.BadRequest(w, "invalid category filter")
			return
		}
		id := uint(c)
		filters.CategoryID = &id
	}

	res, err := h.repo.GetAll(filters)
	if err != nil {
		api.Error(w, err)
		return
	}

	products := make([]ProductResponse, len(res))
	for i := range res {
		products[i] = toResponse(&res[i])
	}
	api.RespondJSON(w, http.StatusOK, products)
}

func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid product id")
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(product))
}

type productInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	CategoryID    *uint   `json:"category_id"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      string  `json:"image_url"`
	SKU           string  `json:"sku"`
}

func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name == "" {
		api.BadRequest(w, "missing name")
		return
	}
	if input.Price < 0 {
		api.BadRequest(w, "price cannot be negative")
		return
	}
	if input.StockQuantity < 0 {
		api.BadRequest(w, "stock_quantity cannot be negative")
		return
	}

	product := &models.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         decimal.NewFromFloat(input.Price),
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		SKU:           input.SKU,
	}
	if err := h.repo.Create(product); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, toResponse(product))
}

func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid product id")
		return
	}

	var input struct {
		Name          *string          `json:"name"`
		Description   *string          `json:"description"`
		Price         *float64         `json:"price"`
		CategoryID    api.OptionalUint `json:"category_id"`
		StockQuantity *int             `json:"stock_quantity"`
		ImageURL      *string          `json:"image_url"`
		SKU           *string          `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Price != nil && *input.Price < 0 {
		api.BadRequest(w, "price cannot be negative")
		return
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		api.BadRequest(w, "stock_quantity cannot be negative")
		return
	}

	patch := models.ProductPatch{
		Name:          input.Name,
		Description:   input.Description,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		SKU:           input.SKU,
	}
	if input.Price != nil {
		price := decimal.NewFromFloat(*input.Price)
		patch.Price = &price
	}
	if input.CategoryID.Set {
		ref := input.CategoryID.Ref()
		patch.CategoryID = &ref
	}

	product, err := h.repo.Update(id, patch)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(product))
}

func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid product id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// HandleAdjustStock applies a relative stock change. The repository
// rejects the whole adjustment if it would drive stock negative.
func (h *ProductsHandler) HandleAdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid product id")
		return
	}

	var input struct {
		Delta *int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Delta == nil {
		api.BadRequest(w, "missing delta")
		return
	}

	product, err := h.repo.AdjustStock(id, *input.Delta)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(product))
}
