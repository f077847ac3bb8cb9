package handler

import (
	"errors"

	"github.com/dermascan-backend/internal/service"
	"github.com/dermascan-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and signin API requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username, email and password are required")
		return
	}

	userID, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			response.Conflict(c, "Username or email already exists")
			return
		}
		response.InternalError(c, "Failed to create user")
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "User registered successfully",
		"userId":  userID,
	})
}

// Signin handles user login
// POST /api/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req service.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	profile, err := h.authService.Signin(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalError(c, "Failed to sign in")
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"user":    profile,
	})
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/signin", h.Signin)
}
