package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	httperr "github.com/veyra-lab/project-veyra/internal/core/errors"
)

// Handler serves the login endpoint.
type Handler struct {
	users  *UserStore
	tokens *TokenService
}

// NewHandler creates the auth handler over the loaded user store.
func NewHandler(users *UserStore, tokens *TokenService) *Handler {
	return &Handler{users: users, tokens: tokens}
}

// RegisterRoutes registers the auth routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/auth/login", h.HandleLogin)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      Role      `json:"role"`
}

// HandleLogin handles POST /auth/login
// Verifies the credentials against the static user store and issues a
// bearer token carrying the user's role. Passwords never reach the logs.
func (h *Handler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid request body",
			Details:   err.Error(),
		})
		return
	}

	role, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			slog.Warn("[Auth] Login rejected", "username", req.Username)
			c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{
				ErrorType: httperr.HttpUnauthorizedError,
				Message:   "Invalid username or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Login failed",
			Details:   err.Error(),
		})
		return
	}

	token, expiresAt, err := h.tokens.Issue(req.Username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to issue token",
			Details:   err.Error(),
		})
		return
	}

	slog.Info("[Auth] Login succeeded", "username", req.Username, "role", role)
	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt, Role: role})
}
