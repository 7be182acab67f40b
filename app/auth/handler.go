package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/leefeettrends/admin-api/app/api"
	"github.com/leefeettrends/admin-api/models"
)

type LoginResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

type UserProvider interface {
	FindActiveByUsername(username string) (*models.User, error)
}

type AuthHandler struct {
	users  UserProvider
	tokens *TokenManager
}

func NewAuthHandler(users UserProvider, tokens *TokenManager) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	mux.HandleFunc("GET /api/auth/me", h.HandleMe)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.BadRequest(w, "invalid JSON body")
		return
	}
	if input.Username == "" || input.Password == "" {
		api.BadRequest(w, "username and password are required")
		return
	}

	user, err := h.users.FindActiveByUsername(input.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			api.Unauthorized(w, "invalid credentials")
			return
		}
		api.Error(w, err)
		return
	}

	ok, err := VerifyPassword(input.Password, user.PasswordHash)
	if err != nil {
		api.Error(w, err)
		return
	}
	if !ok {
		api.Unauthorized(w, "invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		api.Error(w, err)
		return
	}
	api.RespondJSON(w, http.StatusOK, LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		api.Unauthorized(w, "not authenticated")
		return
	}

	claims, err := h.tokens.Parse(tokenString)
	if err != nil {
		api.Unauthorized(w, "not authenticated")
		return
	}
	api.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       claims.UserID,
		"username": claims.Username,
	})
}
