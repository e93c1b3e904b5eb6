package booking

import (
	"context"
	"strings"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListBookings returns the bookings made with email, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidBookingID
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrBookingNotFound
	}
	return deleted, nil
}

// UpdateStatus sets the lifecycle status. Any non-empty value is accepted.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (int64, int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, 0, ErrInvalidBookingID
	}
	if strings.TrimSpace(status) == "" {
		return 0, 0, ErrMissingStatus
	}
	matched, modified, err := s.repo.UpdateStatus(ctx, oid, status)
	if err != nil {
		return 0, 0, err
	}
	if matched == 0 {
		return 0, 0, ErrBookingNotFound
	}
	return matched, modified, nil
}
