package handlers

import (
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles rent payments of a tenant
type PaymentHandler struct {
	payments service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// RecordPayment handles POST /api/properties/:id/tenants/:tid/payments
// @Summary Record a rent payment
// @Description Stores the payment and marks the tenant Paid in one transaction
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Param payment body service.RecordPaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentRecordedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.payments.Record(c.Request.Context(), actor, c.Param("id"), c.Param("tid"), &req)
	if err != nil {
		respondError(c, err, "failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListPayments handles GET /api/properties/:id/tenants/:tid/payments
// @Summary List a tenant's payments
// @Description Newest first
// @Tags payments
// @Produce json
// @Param id path string true "Property ID (UUID)"
// @Param tid path string true "Tenant ID (UUID)"
// @Success 200 {array} models.Payment
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/properties/{id}/tenants/{tid}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	payments, err := h.payments.ListForTenant(c.Request.Context(), actor, c.Param("id"), c.Param("tid"))
	if err != nil {
		respondError(c, err, "failed to list payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
