package products

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/leefeettrends/admin-api/models"
)

// --- Mock Repo ---

type MockProductRepo struct {
	Products map[uint]*models.Product
	nextID   uint

	Err         error
	lastFilters models.ProductFilters
}

func NewMockProductRepo() *MockProductRepo {
	return &MockProductRepo{Products: map[uint]*models.Product{}}
}

func (m *MockProductRepo) GetAll(filters models.ProductFilters) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.lastFilters = filters
	var out []models.Product
	for _, p := range m.Products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockProductRepo) GetByID(id uint) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return p, nil
}

func (m *MockProductRepo) Create(product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	product.ID = m.nextID
	stored := *product
	m.Products[product.ID] = &stored
	return nil
}

func (m *MockProductRepo) Update(id uint, patch models.ProductPatch) (*models.Product, error) {
	p, ok := m.Products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	return p, nil
}

func (m *MockProductRepo) Delete(id uint) error {
	if _, ok := m.Products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(m.Products, id)
	return nil
}

func (m *MockProductRepo) AdjustStock(id uint, delta int) (*models.Product, error) {
	p, ok := m.Products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	if p.StockQuantity+delta < 0 {
		return nil, models.ErrInsufficientStock
	}
	p.StockQuantity += delta
	return p, nil
}

// --- Tests ---

func TestHandleAdjustStock(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		body               string
		expectedStatusCode int
		expectedStock      int
	}{
		{
			name:               "Restock",
			url:                "/api/products/1/stock",
			body:               `{"delta": 5}`,
			expectedStatusCode: http.StatusOK,
			expectedStock:      15,
		},
		{
			name:               "Sale down to zero",
			url:                "/api/products/1/stock",
			body:               `{"delta": -10}`,
			expectedStatusCode: http.StatusOK,
			expectedStock:      0,
		},
		{
			name:               "Oversell is rejected and stock untouched",
			url:                "/api/products/1/stock",
			body:               `{"delta": -11}`,
			expectedStatusCode: http.StatusConflict,
			expectedStock:      10,
		},
		{
			name:               "Zero delta is a no-op",
			url:                "/api/products/1/stock",
			body:               `{"delta": 0}`,
			expectedStatusCode: http.StatusOK,
			expectedStock:      10,
		},
		{
			name:               "Missing delta",
			url:                "/api/products/1/stock",
			body:               `{}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedStock:      10,
		},
		{
			name:               "Missing product",
			url:                "/api/products/42/stock",
			body:               `{"delta": 1}`,
			expectedStatusCode: http.StatusNotFound,
			expectedStock:      10,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := NewMockProductRepo()
			repo.Products[1] = &models.Product{ID: 1, Name: "Mug", StockQuantity: 10}
			mux := http.NewServeMux()
			NewProductsHandler(repo).Register(mux)

			// Act
			req := httptest.NewRequest("POST", tc.url, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.expectedStock, repo.Products[1].StockQuantity)
			if tc.expectedStatusCode == http.StatusOK {
				var resp ProductResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.expectedStock, resp.StockQuantity)
			}
		})
	}
}

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		expectedStatusCode int
	}{
		{
			name:               "Valid product",
			body:               `{"name": "Mug", "price": 12.5, "stock_quantity": 3, "sku": "MUG-1"}`,
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Missing name",
			body:               `{"price": 12.5}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Negative price",
			body:               `{"name": "Mug", "price": -1}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Negative stock",
			body:               `{"name": "Mug", "price": 1, "stock_quantity": -2}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Malformed body",
			body:               `{"name": `,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMockProductRepo()
			handler := NewProductsHandler(repo)

			req := httptest.NewRequest("POST", "/api/products", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == http.StatusCreated {
				var resp ProductResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Greater(t, resp.ID, uint(0))
				assert.Len(t, repo.Products, 1)
			} else {
				assert.Empty(t, repo.Products)
			}
		})
	}
}

func TestHandleUpdateCategory(t *testing.T) {
	catID := uint(2)
	newRepo := func() *MockProductRepo {
		repo := NewMockProductRepo()
		repo.Products[1] = &models.Product{ID: 1, Name: "Mug", CategoryID: &catID}
		return repo
	}

	t.Run("Explicit null detaches the category", func(t *testing.T) {
		repo := newRepo()
		handler := NewProductsHandler(repo)
		mux := http.NewServeMux()
		handler.Register(mux)

		req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"category_id": null}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, repo.Products[1].CategoryID)
	})

	t.Run("Absent field leaves the category alone", func(t *testing.T) {
		repo := newRepo()
		mux := http.NewServeMux()
		NewProductsHandler(repo).Register(mux)

		req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"name": "Big Mug"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Big Mug", repo.Products[1].Name)
		if assert.NotNil(t, repo.Products[1].CategoryID) {
			assert.Equal(t, uint(2), *repo.Products[1].CategoryID)
		}
	})

	t.Run("New category id is applied", func(t *testing.T) {
		repo := newRepo()
		mux := http.NewServeMux()
		NewProductsHandler(repo).Register(mux)

		req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"category_id": 9}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, repo.Products[1].CategoryID) {
			assert.Equal(t, uint(9), *repo.Products[1].CategoryID)
		}
	})
}

func TestHandleGetAllFilters(t *testing.T) {
	t.Run("Search and category flow to the repo", func(t *testing.T) {
		repo := NewMockProductRepo()
		mux := http.NewServeMux()
		NewProductsHandler(repo).Register(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products?q=mug&category=3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "mug", repo.lastFilters.Search)
		if assert.NotNil(t, repo.lastFilters.CategoryID) {
			assert.Equal(t, uint(3), *repo.lastFilters.CategoryID)
		}
	})

	t.Run("Non-numeric category filter is rejected", func(t *testing.T) {
		repo := NewMockProductRepo()
		mux := http.NewServeMux()
		NewProductsHandler(repo).Register(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products?category=kitchen", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGet(t *testing.T) {
	repo := NewMockProductRepo()
	repo.Products[1] = &models.Product{
		ID:    1,
		Name:  "Mug",
		Price: decimal.NewFromFloat(12.50),
		Category: &models.Category{
			Name: "Kitchen",
		},
	}
	mux := http.NewServeMux()
	NewProductsHandler(repo).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ProductResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Mug", resp.Name)
	assert.Equal(t, 12.50, resp.Price)
	if assert.NotNil(t, resp.CategoryName) {
		assert.Equal(t, "Kitchen", *resp.CategoryName)
	}
}

func TestHandleDelete(t *testing.T) {
	repo := NewMockProductRepo()
	repo.Products[1] = &models.Product{ID: 1, Name: "Mug"}
	mux := http.NewServeMux()
	NewProductsHandler(repo).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/products/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.Products)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", fmt.Sprintf("/api/products/%d", 1), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
