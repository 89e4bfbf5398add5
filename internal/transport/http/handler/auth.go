package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gstippagol/habit/internal/domain/service"
	"github.com/gstippagol/habit/internal/transport/http/middleware"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{
		auth: auth,
	}
}

// Register handles user registration
// @Summary Register new user
// @Description Create a new user account; a verification email is sent asynchronously
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,username=string,password=string} true "Registration request"
// @Success 201 {object} object{message=string,user_id=string,email=string,username=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Registration successful, please verify your email",
		"user_id":  user.ID.String(),
		"email":    user.Email,
		"username": user.Username,
	})
}

// Login handles user login
// @Summary Login
// @Description Verify credentials and receive an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login request"
// @Success 200 {object} object{user_id=string,access_token=string,refresh_token=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, tokens, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":       user.ID.String(),
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// RefreshToken rotates the token pair
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refresh_token=string} true "Refresh request"
// @Success 200 {object} object{access_token=string,refresh_token=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tokens, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Logout revokes the current session
// @Summary Logout
// @Description Revoke the session behind the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Failure 401 {object} object{error=string}
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := middleware.BearerToken(r)
	if token == "" {
		http.Error(w, "Missing authorization header", http.StatusUnauthorized)
		return
	}

	if err := h.auth.Logout(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged out successfully",
	})
}

// VerifyEmail confirms an email address via token
// @Summary Verify email
// @Description Confirm an email address using the token from the verification email
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} object{message=string,email=string}
// @Failure 400 {object} object{error=string}
// @Router /api/v1/auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Verification token is required", http.StatusBadRequest)
		return
	}

	user, err := h.auth.VerifyEmail(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or expired verification token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Email verified successfully",
		"email":   user.Email,
	})
}
