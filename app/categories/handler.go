package categories

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryProvider interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
	Update(id uint, patch models.CategoryPatch) (*models.Category, error)
	Delete(id uint) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/categories", h.HandleGetAll)
	mux.HandleFunc("GET /api/categories/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/categories", h.HandleCreate)
	mux.HandleFunc("PUT /api/categories/{id}", h.HandleUpdate)
	mux.HandleFunc("DELETE /api/categories/{id}", h.HandleDelete)
}

func toResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i := range categories {
		response[i] = toResponse(&categories[i])
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid category id")
		return
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(category))
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name == "" {
		api.BadRequest(w, "missing name")
		return
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.repo.Create(category); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, toResponse(category))
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid category id")
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name != nil && *input.Name == "" {
		api.BadRequest(w, "name cannot be empty")
		return
	}

	category, err := h.repo.Update(id, models.CategoryPatch{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(category))
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid category id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
