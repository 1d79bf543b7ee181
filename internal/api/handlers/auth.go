package handlers

import (
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	identity service.IdentityServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity service.IdentityServiceInterface) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register handles POST /api/auth/register
// @Summary Register a PG business
// @Description Create a PG business together with its first owner account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body service.RegisterRequest true "Business and owner details"
// @Success 201 {object} service.AuthResponse "Registered"
// @Failure 400 {object} ErrorResponse "Invalid input or name/email already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.identity.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to register")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.identity.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, resp)
}
