package bookingRepo

import (
	"context"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository defines data access for booking documents.
type BookingRepository interface {
	// Create inserts a booking and returns the store-assigned id.
	Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	// FindDuplicate returns an existing booking for the same service, email and date, or nil.
	FindDuplicate(ctx context.Context, serviceID, userEmail, bookingDate string) (*models.Booking, error)
	// GetByID returns the booking or nil when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// ListPaid returns every booking whose paymentStatus is paid.
	ListPaid(ctx context.Context) ([]models.Booking, error)
	// UpdateStatus sets the lifecycle status and returns the matched and modified counts.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, int64, error)
	// MarkPaid sets paymentStatus=paid and trackingId on the booking referenced by ref.
	// A ref that is not an ObjectID matches nothing; the matched count is returned either way.
	MarkPaid(ctx context.Context, ref, trackingID string) (int64, error)
	// Delete removes a booking and returns the deleted count.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
