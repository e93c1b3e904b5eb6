package booking

import (
	"context"
	"fmt"

	"smarthome/models"

	"go.uber.org/zap"
)

// CreateBooking snapshots the service onto a new pending booking.
// The duplicate check and the insert are separate store calls, so concurrent identical
// requests can both succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.CreateBookingInput) (*models.Booking, error) {
	service, err := s.services.GetServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindDuplicate(ctx, input.ServiceID, input.UserEmail, input.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("error checking for duplicate booking: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyBooked
	}

	booking := &models.Booking{
		ServiceID:    input.ServiceID,
		ServiceName:  service.DisplayName(),
		ServiceImage: service.Image,
		Cost:         service.Price,
		Unit:         service.Unit,
		UserName:     input.UserName,
		UserEmail:    input.UserEmail,
		BookingDate:  input.BookingDate,
		Location:     input.Location,
		Status:       models.BookingStatusPending,
		CreatedAt:    s.now(),
	}
	if _, err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.String("bookingId", booking.ID.Hex()),
		zap.String("serviceId", booking.ServiceID),
		zap.String("bookingDate", booking.BookingDate),
	)
	return booking, nil
}
