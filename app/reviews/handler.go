package reviews

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type ReviewResponse struct {
	ID                 uint      `json:"id"`
	ProductID          uint      `json:"product_id"`
	CustomerID         uint      `json:"customer_id"`
	OrderID            *uint     `json:"order_id"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	IsApproved         bool      `json:"is_approved"`
	HelpfulCount       int       `json:"helpful_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ListResponse struct {
	Total   int              `json:"total"`
	Reviews []ReviewResponse `json:"reviews"`
}

type ReviewProvider interface {
	GetFiltered(offset, limit int, filters models.ReviewFilters) ([]models.Review, int64, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	SetApproved(id uint, approved bool) (*models.Review, error)
	IncrementHelpful(id uint) (*models.Review, error)
	Delete(id uint) error
}

type ReviewsHandler struct {
	repo ReviewProvider
}

func NewReviewsHandler(r ReviewProvider) *ReviewsHandler {
	return &ReviewsHandler{
		repo: r,
	}
}

func (h *ReviewsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reviews", h.HandleGetAll)
	mux.HandleFunc("GET /api/reviews/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/reviews", h.HandleCreate)
	mux.HandleFunc("PATCH /api/reviews/{id}/approve", h.HandleApprove)
	mux.HandleFunc("PATCH /api/reviews/{id}/reject", h.HandleReject)
	mux.HandleFunc("POST /api/reviews/{id}/helpful", h.HandleHelpful)
	mux.HandleFunc("DELETE /api/reviews/{id}", h.HandleDelete)
}

func toResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:                 r.ID,
		ProductID:          r.ProductID,
		CustomerID:         r.CustomerID,
		OrderID:            r.OrderID,
		Rating:             r.Rating,
		Title:              r.Title,
		Comment:            r.Comment,
		IsVerifiedPurchase: r.IsVerifiedPurchase,
		IsApproved:         r.IsApproved,
		HelpfulCount:       r.HelpfulCount,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (h *ReviewsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	filters := models.ReviewFilters{
		PendingOnly: r.URL.Query().Get("pending") == "true",
	}
	if pStr := r.URL.Query().Get("product"); pStr != "" {
		p, err := strconv.ParseUint(pStr, 10, 64)
		if err != nil {
			api.BadRequest(w, "invalid product filter")
			return
		}
		id := uint(p)
		filters.ProductID = &id
	}

	res, total, err := h.repo.GetFiltered(offset, limit, filters)
	if err != nil {
		api.Error(w, err)
		return
	}

	reviews := make([]ReviewResponse, len(res))
	for i := range res {
		reviews[i] = toResponse(&res[i])
	}
	api.RespondJSON(w, http.StatusOK, ListResponse{
		Total:   int(total),
		Reviews: reviews,
	})
}

func (h *ReviewsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid review id")
		return
	}

	review, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(review))
}

func (h *ReviewsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID          uint   `json:"product_id"`
		CustomerID         uint   `json:"customer_id"`
		OrderID            *uint  `json:"order_id"`
		Rating             int    `json:"rating"`
		Title              string `json:"title"`
		Comment            string `json:"comment"`
		IsVerifiedPurchase bool   `json:"is_verified_purchase"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.ProductID == 0 || input.CustomerID == 0 {
		api.BadRequest(w, "missing product_id or customer_id")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		api.BadRequest(w, "rating must be between 1 and 5")
		return
	}

	review := &models.Review{
		ProductID:          input.ProductID,
		CustomerID:         input.CustomerID,
		OrderID:            input.OrderID,
		Rating:             input.Rating,
		Title:              input.Title,
		Comment:            input.Comment,
		IsVerifiedPurchase: input.IsVerifiedPurchase,
	}
	if err := h.repo.Create(review); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, toResponse(review))
}

func (h *ReviewsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.setApproved(w, r, true)
}

func (h *ReviewsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.setApproved(w, r, false)
}

func (h *ReviewsHandler) setApproved(w http.ResponseWriter, r *http.Request, approved bool) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid review id")
		return
	}

	review, err := h.repo.SetApproved(id, approved)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(review))
}

func (h *ReviewsHandler) HandleHelpful(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid review id")
		return
	}

	review, err := h.repo.IncrementHelpful(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(review))
}

func (h *ReviewsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid review id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
}
