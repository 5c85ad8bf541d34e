package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/middleware"
	"github.com/rajesh2024-krita/fintcs/internal/domain"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/auth"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

// Authenticator verifies user credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userUC     Authenticator
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userUC Authenticator, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UserInfo represents the authenticated user's public information.
type UserInfo struct {
	ID        string      `json:"id"`
	EDPNumber string      `json:"edp_number"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// Do not leak whether the email exists.
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  userInfoFromDomain(user),
	})
}

// GetCurrentUser returns the authenticated user from the request
// context.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	writeJSON(w, http.StatusOK, userInfoFromDomain(user))
}

func userInfoFromDomain(user *domain.User) UserInfo {
	return UserInfo{
		ID:        user.ID,
		EDPNumber: user.EDPNumber,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
	}
}
