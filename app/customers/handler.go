package customers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type CustomerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerProvider interface {
	GetAll(search string) ([]models.Customer, error)
	GetByID(id uint) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(id uint, patch models.CustomerPatch) (*models.Customer, error)
	Delete(id uint) error
}

type CustomersHandler struct {
	repo CustomerProvider
}

func NewCustomersHandler(r CustomerProvider) *CustomersHandler {
	return &CustomersHandler{repo: r}
}

func (h *CustomersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/customers", h.HandleGetAll)
	mux.HandleFunc("GET /api/customers/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/customers", h.HandleCreate)
	mux.HandleFunc("PUT /api/customers/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/customers/{id}", h.HandleDelete)
}

func toResponse(c *models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (h *CustomersHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.repo.GetAll(r.URL.Query().Get("q"))
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]CustomerResponse, len(customers))
	for i := range customers {
		response[i] = toResponse(&customers[i])
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *CustomersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid customer id")
		return
	}

	customer, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(customer))
}

func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name == "" {
		api.BadRequest(w, "missing name")
		return
	}
	if !strings.Contains(input.Email, "@") {
		api.BadRequest(w, "invalid email")
		return
	}

	customer := &models.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := h.repo.Create(customer); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, toResponse(customer))
}

func (h *CustomersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid customer id")
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name != nil && *input.Name == "" {
		api.BadRequest(w, "name cannot be empty")
		return
	}
	if input.Email != nil && !strings.Contains(*input.Email, "@") {
		api.BadRequest(w, "invalid email")
		return
	}

	customer, err := h.repo.Update(id, models.CustomerPatch{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(customer))
}

func (h *CustomersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid customer id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted"})
}
