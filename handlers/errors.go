package handlers

import (
	"errors"
	"net/http"

	"smarthome/services/booking"
	"smarthome/services/catalog"
	"smarthome/services/payment"
	"smarthome/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors to status codes. Unrecognised errors are logged and
// reported as 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(fallback, zap.Error(err))
		message = fallback
	}
	c.JSON(status, gin.H{"message": message})
}

func classify(err error) (int, string) {
	var be *booking.BookingError
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound, booking.ErrBookingNotFound.Message
	case errors.As(err, &be):
		return http.StatusBadRequest, be.Message
	case errors.Is(err, catalog.ErrServiceNotFound):
		return http.StatusNotFound, "Service not found"
	case errors.Is(err, catalog.ErrInvalidServiceID):
		return http.StatusBadRequest, "Invalid service id"
	case errors.Is(err, catalog.ErrNothingToUpdate):
		return http.StatusBadRequest, "No fields to update"
	case errors.Is(err, payment.ErrInvalidCost):
		return http.StatusBadRequest, "Cost must be a non-negative amount with at most two decimal places"
	case errors.Is(err, payment.ErrMissingSessionID):
		return http.StatusBadRequest, "session_id is required"
	case errors.Is(err, payment.ErrSessionNotFound):
		return http.StatusNotFound, "Checkout session not found"
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, user.ErrMissingRole):
		return http.StatusBadRequest, "Role is required"
	default:
		return http.StatusInternalServerError, ""
	}
}
