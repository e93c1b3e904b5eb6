package booking

import (
	"context"
	"time"

	bookingRepo "smarthome/database/repository/booking"
	"smarthome/models"

	"go.uber.org/zap"
)

// BookingService manages customer bookings up to the point of payment.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id string) (int64, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, int64, error)
}

// ServiceLookup resolves the catalog entry a booking is made against.
type ServiceLookup interface {
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	repo     bookingRepo.BookingRepository
	services ServiceLookup
	logger   *zap.Logger
	now      func() time.Time
}

func NewBookingService(repo bookingRepo.BookingRepository, services ServiceLookup, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{repo: repo, services: services, logger: logger, now: time.Now}
}
