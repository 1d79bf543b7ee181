package handlers

import (
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles HTTP requests for property operations
type PropertyHandler struct {
	properties service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body service.CreatePropertyRequest true "Property data"
// @Success 201 {object} models.Property
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.properties.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "failed to create property")
		return
	}

	c.JSON(http.StatusCreated, property)
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description List the properties of the caller's PG business, oldest first
// @Tags properties
// @Produce json
// @Success 200 {array} models.Property
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	properties, err := h.properties.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "failed to list properties")
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetProperty handles GET /api/properties/:id
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} models.Property
// @Failure 403 {object} ErrorResponse "Property belongs to another business"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	property, err := h.properties.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to get property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Update a property
// @Description Only the supplied fields are changed
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param property body service.UpdatePropertyRequest true "Fields to change"
// @Success 200 {object} models.Property
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}

	property, err := h.properties.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to update property")
		return
	}

	c.JSON(http.StatusOK, property)
}

// DeleteProperty handles DELETE /api/properties/:id
// @Summary Delete a property
// @Description Refused with 409 while tenants still live in the property
// @Tags properties
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Property still has tenants"
// @Security BearerAuth
// @Router /api/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.properties.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "failed to delete property")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Property removed successfully"})
}
