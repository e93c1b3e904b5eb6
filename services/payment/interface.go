package payment

import (
	"context"
	"time"

	bookingRepo "smarthome/database/repository/booking"
	paymentRepo "smarthome/database/repository/payment"
	"smarthome/models"

	"go.uber.org/zap"
)

// PaymentService drives a booking from checkout to a recorded payment.
type PaymentService interface {
	StartCheckout(ctx context.Context, req CheckoutRequest) (string, error)
	ConfirmSettlement(ctx context.Context, sessionID string) (*SettlementResult, error)
	ListPayments(ctx context.Context, customerEmail string) ([]models.Payment, error)
}

// Options configures the checkout session callbacks and currency.
type Options struct {
	Currency  string
	ClientURL string
}

type DefaultPaymentService struct {
	bookings bookingRepo.BookingRepository
	payments paymentRepo.PaymentRepository
	gateway  Gateway
	opts     Options
	logger   *zap.Logger

	now             func() time.Time
	newTrackingCode func() string
}

func NewPaymentService(
	bookings bookingRepo.BookingRepository,
	payments paymentRepo.PaymentRepository,
	gateway Gateway,
	opts Options,
	logger *zap.Logger,
) *DefaultPaymentService {
	return &DefaultPaymentService{
		bookings:        bookings,
		payments:        payments,
		gateway:         gateway,
		opts:            opts,
		logger:          logger,
		now:             time.Now,
		newTrackingCode: GenerateTrackingCode,
	}
}

func (s *DefaultPaymentService) ListPayments(ctx context.Context, customerEmail string) ([]models.Payment, error) {
	return s.payments.List(ctx, customerEmail)
}
