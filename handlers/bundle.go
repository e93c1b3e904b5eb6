package handlers

import (
	"smarthome/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	TokenVerifier middleware.TokenVerifier

	// Payment endpoints
	CreateCheckoutSessionHandler gin.HandlerFunc
	PaymentSuccessHandler        gin.HandlerFunc
	GetPaymentsHandler           gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetBookingsByEmailHandler  gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc

	// Service catalog endpoints
	GetServicesHandler   gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	CreateServiceHandler gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// User endpoints
	GetUsersHandler       gin.HandlerFunc
	GetUserByEmailHandler gin.HandlerFunc
	CreateUserHandler     gin.HandlerFunc
	UpdateUserRoleHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires each handler's methods into the bundle.
func NewHandlerBundle(
	verifier middleware.TokenVerifier,
	payments *PaymentHandler,
	bookings *BookingHandler,
	services *ServiceHandler,
	users *UserHandler,
	health *HealthHandler,
) *HandlerBundle {
	return &HandlerBundle{
		TokenVerifier: verifier,

		CreateCheckoutSessionHandler: payments.CreateCheckoutSession,
		PaymentSuccessHandler:        payments.PaymentSuccess,
		GetPaymentsHandler:           payments.GetPayments,

		CreateBookingHandler:       bookings.CreateBooking,
		GetBookingsByEmailHandler:  bookings.GetBookingsByEmail,
		DeleteBookingHandler:       bookings.DeleteBooking,
		UpdateBookingStatusHandler: bookings.UpdateBookingStatus,

		GetServicesHandler:   services.GetServices,
		GetServiceHandler:    services.GetService,
		CreateServiceHandler: services.CreateService,
		UpdateServiceHandler: services.UpdateService,
		DeleteServiceHandler: services.DeleteService,

		GetUsersHandler:       users.GetUsers,
		GetUserByEmailHandler: users.GetUserByEmail,
		CreateUserHandler:     users.CreateUser,
		UpdateUserRoleHandler: users.UpdateUserRole,

		HealthHandler: health.Health,
	}
}
