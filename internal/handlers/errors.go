package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/orange/internal/models"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Upstream failures carry internals; don't leak them to callers.
		msg = "internal server error"
		_ = c.Error(err)
	}
	c.JSON(status, models.ErrorResponse(msg))
}

// currentUser pulls the authenticated account set by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user in context"))
		return nil, false
	}
	return user, true
}
