package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recettes/internal/service"
)

// AuthService is the authentication surface the handler depends on.
type AuthService interface {
	Login(username, password string) (*service.TokenPair, error)
	Refresh(refreshToken string) (*service.TokenPair, error)
}

// AuthHandler serves login and token refresh.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "username and password are required")
		return
	}

	pair, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, pair)
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "refresh_token is required")
		return
	}

	pair, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, pair)
}
