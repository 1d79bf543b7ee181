package handlers

import (
	"errors"
	"net/http"

	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for the renters of a property
type TenantHandler struct {
	tenants        service.TenantServiceInterface
	maxUploadBytes int64
}

// NewTenantHandler creates a new tenant handler. Uploads larger than maxUploadBytes are refused.
func NewTenantHandler(tenants service.TenantServiceInterface, maxUploadBytes int64) *TenantHandler {
	return &TenantHandler{tenants: tenants, maxUploadBytes: maxUploadBytes}
}

// CreateTenant handles POST /api/properties/:id/tenants
// @Summary Add a tenant to a property
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} models.Tenant
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Property not found"
// @Security BearerAuth
// @Router /api/properties/{id}/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenants.Create(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to create tenant")
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// ListTenants handles GET /api/properties/:id/tenants
// @Summary List the tenants of a property
// @Description Ordered by room number, then name
// @Tags tenants
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Success 200 {array} models.Tenant
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id}/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tenants, err := h.tenants.List(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "failed to list tenants")
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant handles GET /api/properties/:id/tenants/:tid
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Success 200 {object} models.Tenant
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	tenant, err := h.tenants.Get(c.Request.Context(), actor, c.Param("id"), c.Param("tid"))
	if err != nil {
		respondError(c, err, "failed to get tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PUT /api/properties/:id/tenants/:tid
// @Summary Update a tenant
// @Description Only the supplied fields are changed
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenants.Update(c.Request.Context(), actor, c.Param("id"), c.Param("tid"), &req)
	if err != nil {
		respondError(c, err, "failed to update tenant")
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /api/properties/:id/tenants/:tid
// @Summary Remove a tenant
// @Description The tenant's payments are kept
// @Tags tenants
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.tenants.Delete(c.Request.Context(), actor, c.Param("id"), c.Param("tid")); err != nil {
		respondError(c, err, "failed to delete tenant")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Tenant record removed successfully"})
}

// UploadDocument handles POST /api/properties/:id/tenants/:tid/upload-document
// @Summary Upload a tenant identity document
// @Tags tenants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Param document formData file true "Document file"
// @Success 200 {object} service.DocumentUploadResponse
// @Failure 400 {object} ErrorResponse "No file or file too large"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Document storage not configured"
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid}/upload-document [post]
func (h *TenantHandler) UploadDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
	file, err := c.FormFile("document")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondError(c, apperrors.NewValidationError("document", "file is too large"), "")
		default:
			respondError(c, apperrors.ErrMissingDocument, "")
		}
		return
	}

	resp, err := h.tenants.UploadDocument(c.Request.Context(), actor, c.Param("id"), c.Param("tid"), file)
	if err != nil {
		respondError(c, err, "failed to upload document")
		return
	}

	c.JSON(http.StatusOK, resp)
}
