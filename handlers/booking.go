package handlers

import (
	"net/http"

	"smarthome/models"
	"smarthome/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := getLogger(c)
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Debug("invalid booking request", zap.Error(err))
		message := "Missing required fields"
		if failedTag(err, "objectid") {
			message = "Invalid service id"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "details": err.Error()})
		return
	}

	created, err := h.bookingService.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": created.ID, "booking": created})
}

// GetBookingsByEmail handles GET /bookings/:email. Callers may only read their own bookings.
func (h *BookingHandler) GetBookingsByEmail(c *gin.Context) {
	email := c.Param("email")
	if email != decodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Error fetching bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	deleted, err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Error deleting booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// UpdateBookingStatus handles PATCH /bookings/:id.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	matched, modified, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		respondError(c, err, "Error updating booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": matched, "modifiedCount": modified})
}
