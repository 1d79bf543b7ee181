package handlers

import (
	"errors"
	"net/http"

	"pg-management-backend/internal/auth"
	apperrors "pg-management-backend/internal/errors"
	"pg-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"Property removed successfully"`
}

// respondError maps a service error to its HTTP status. Unclassified errors are
// logged and answered with fallback so internals never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error(fallback)
		message = fallback
	}
	c.JSON(status, ErrorResponse{Error: message})
}

func classify(err error) (int, string) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsAlreadyExists(err):
		return http.StatusBadRequest, err.Error()
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized, err.Error()
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden, err.Error()
	case apperrors.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case apperrors.IsConflict(err):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrNotImplemented):
		return http.StatusNotImplemented, err.Error()
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, ""
	}
}

// bindJSON decodes the request body into req, answering 400 on malformed input
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// requireActor fetches the authenticated actor stored by the auth middleware
func requireActor(c *gin.Context) (auth.Actor, bool) {
	actor, ok := auth.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrNoToken.Error()})
		return auth.Actor{}, false
	}
	return actor, true
}
