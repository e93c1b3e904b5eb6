package handlers

import (
	"net/http"

	"smarthome/models"
	"smarthome/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateCheckoutSession handles POST /create-checkout-session.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	logger := getLogger(c)
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Debug("invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "details": err.Error()})
		return
	}

	url, err := h.paymentService.StartCheckout(c.Request.Context(), payment.CheckoutRequest{
		Cost:          input.Cost.String(),
		ServiceName:   input.ServiceName,
		ServiceID:     input.ServiceID,
		CustomerEmail: input.CreatedByEmail,
	})
	if err != nil {
		respondError(c, err, "Failed to create checkout session")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PaymentSuccess handles PATCH /payment-success?session_id=<id>. Safe to call repeatedly.
func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	result, err := h.paymentService.ConfirmSettlement(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		respondError(c, err, "Failed to confirm payment")
		return
	}

	switch {
	case result.AlreadyRecorded:
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"alreadyRecorded": true,
			"message":         "Payment already recorded",
			"transactionId":   result.TransactionID,
			"trackingId":      result.TrackingID,
		})
	case !result.Settled:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment not completed yet",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"alreadyRecorded": false,
			"message":         "Payment recorded",
			"transactionId":   result.TransactionID,
			"trackingId":      result.TrackingID,
			"paymentInfo":     result.Payment,
		})
	}
}

// GetPayments handles GET /payment. Without ?email every payment is returned; with it,
// the email must belong to the caller.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	email := c.Query("email")
	if email != "" && email != decodedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Error fetching payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
