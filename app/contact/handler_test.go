package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leefeettrends/admin-api/models"
)

// --- Mock Repository ---

type MockMessageRepo struct {
	Messages  map[uint]*models.ContactMessage
	LastSaved *models.ContactMessage
}

func NewMockMessageRepo() *MockMessageRepo {
	return &MockMessageRepo{Messages: map[uint]*models.ContactMessage{}}
}

func (m *MockMessageRepo) GetAll() ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	for _, msg := range m.Messages {
		out = append(out, *msg)
	}
	return out, nil
}

func (m *MockMessageRepo) GetByID(id uint) (*models.ContactMessage, error) {
	msg, ok := m.Messages[id]
	if !ok {
		return nil, models.ErrMessageNotFound
	}
	return msg, nil
}

func (m *MockMessageRepo) Create(message *models.ContactMessage) error {
	message.ID = uint(len(m.Messages) + 1)
	stored := *message
	m.Messages[message.ID] = &stored
	m.LastSaved = &stored
	return nil
}

func (m *MockMessageRepo) UpdateStatus(id uint, status string) (*models.ContactMessage, error) {
	msg, ok := m.Messages[id]
	if !ok {
		return nil, models.ErrMessageNotFound
	}
	msg.Status = status
	return msg, nil
}

func (m *MockMessageRepo) Delete(id uint) error {
	if _, ok := m.Messages[id]; !ok {
		return models.ErrMessageNotFound
	}
	delete(m.Messages, id)
	return nil
}

// --- Tests ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		expectedStatusCode int
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Where is my order?"}`,
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Missing message body",
			requestBody:        `{"name":"Ada","email":"ada@example.com"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Bad email",
			requestBody:        `{"name":"Ada","email":"nope","message":"hello"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			repo := NewMockMessageRepo()
			handler := NewContactHandler(repo)
			req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(tc.requestBody))
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCreate(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == http.StatusCreated {
				var resp MessageResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, models.MessageStatusUnread, resp.Status, "new messages start unread")
			} else {
				assert.Nil(t, repo.LastSaved)
			}
		})
	}
}

func TestHandleUpdateStatus(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		body               string
		expectedStatusCode int
		expectedStatus     string
	}{
		{
			name:               "Mark read",
			url:                "/api/contact/1/status",
			body:               `{"status":"read"}`,
			expectedStatusCode: http.StatusOK,
			expectedStatus:     "read",
		},
		{
			name:               "Mark replied",
			url:                "/api/contact/1/status",
			body:               `{"status":"replied"}`,
			expectedStatusCode: http.StatusOK,
			expectedStatus:     "replied",
		},
		{
			name:               "Unknown status",
			url:                "/api/contact/1/status",
			body:               `{"status":"archived"}`,
			expectedStatusCode: http.StatusBadRequest,
			expectedStatus:     "unread",
		},
		{
			name:               "Missing message",
			url:                "/api/contact/9/status",
			body:               `{"status":"read"}`,
			expectedStatusCode: http.StatusNotFound,
			expectedStatus:     "unread",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMockMessageRepo()
			repo.Messages[1] = &models.ContactMessage{ID: 1, Name: "Ada", Status: "unread"}
			mux := http.NewServeMux()
			NewContactHandler(repo).Register(mux)

			req := httptest.NewRequest("PATCH", tc.url, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			assert.Equal(t, tc.expectedStatus, repo.Messages[1].Status)
		})
	}
}

func TestHandleDelete(t *testing.T) {
	repo := NewMockMessageRepo()
	repo.Messages[1] = &models.ContactMessage{ID: 1, Name: "Ada"}
	mux := http.NewServeMux()
	NewContactHandler(repo).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/contact/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.Messages)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/contact/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
