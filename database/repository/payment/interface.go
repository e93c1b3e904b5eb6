package paymentRepo

import (
	"context"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRepository defines data access for payment documents.
type PaymentRepository interface {
	// FindByTransactionID returns the payment recorded for a gateway transaction, or nil.
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	// FindByTrackingID returns the payment carrying a tracking code, or nil.
	FindByTrackingID(ctx context.Context, trackingID string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	// List returns payments newest first, restricted to customerEmail when it is non-empty.
	List(ctx context.Context, customerEmail string) ([]models.Payment, error)
}
