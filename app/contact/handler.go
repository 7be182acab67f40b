package contact

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type MessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageProvider interface {
	GetAll() ([]models.ContactMessage, error)
	GetByID(id uint) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	UpdateStatus(id uint, status string) (*models.ContactMessage, error)
	Delete(id uint) error
}

type ContactHandler struct {
	repo MessageProvider
}

func NewContactHandler(r MessageProvider) *ContactHandler {
	return &ContactHandler{repo: r}
}

func (h *ContactHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/contact", h.HandleGetAll)
	mux.HandleFunc("GET /api/contact/{id}", h.HandleGet)
	mux.HandleFunc("POST /api/contact", h.HandleCreate)
	mux.HandleFunc("PATCH /api/contact/{id}/status", h.HandleUpdateStatus)
	mux.HandleFunc("DELETE /api/contact/{id}", h.HandleDelete)
}

func toResponse(m *models.ContactMessage) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func (h *ContactHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.repo.GetAll()
	if err != nil {
		api.Error(w, err)
		return
	}

	response := make([]MessageResponse, len(messages))
	for i := range messages {
		response[i] = toResponse(&messages[i])
	}
	api.RespondJSON(w, http.StatusOK, response)
}

func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid message id")
		return
	}

	message, err := h.repo.GetByID(id)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(message))
}

func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Name == "" || input.Message == "" {
		api.BadRequest(w, "missing name or message")
		return
	}
	if !strings.Contains(input.Email, "@") {
		api.BadRequest(w, "invalid email")
		return
	}

	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.MessageStatusUnread,
	}
	if err := h.repo.Create(message); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusCreated, toResponse(message))
}

func (h *ContactHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid message id")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if !models.ValidMessageStatus(input.Status) {
		api.BadRequest(w, "unknown status")
		return
	}

	message, err := h.repo.UpdateStatus(id, input.Status)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, toResponse(message))
}

func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r)
	if err != nil {
		api.BadRequest(w, "invalid message id")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]string{"message": "Contact message deleted"})
}
