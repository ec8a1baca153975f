package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// IsAdmin reports whether the authenticated caller carries the admin claim.
func IsAdmin(c *gin.Context) bool {
	val, ok := c.Get(middleware.AdminContextKey)
	if !ok {
		return false
	}
	admin, _ := val.(bool)
	return admin
}

// RespondError maps domain errors to HTTP statuses. Validation failures keep
// their field-level messages.
func RespondError(c *gin.Context, err error) {
	if v, ok := domainErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": v.Fields})
		return
	}
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists), errors.Is(err, domainErrors.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidTransition), errors.Is(err, domainErrors.ErrInvalidAmount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		c.Status(http.StatusForbidden)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
