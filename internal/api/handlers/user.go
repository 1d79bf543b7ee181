package handlers

import (
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the authenticated account's own data
type UserHandler struct {
	identity service.IdentityServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(identity service.IdentityServiceInterface) *UserHandler {
	return &UserHandler{identity: identity}
}

// GetProfile handles GET /api/users/profile
// @Summary Current account
// @Tags users
// @Produce json
// @Success 200 {object} service.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	profile, err := h.identity.GetProfile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
