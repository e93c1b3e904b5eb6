package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the lookup indexes used by booking queries.
// The (serviceId, userEmail, bookingDate) index is not unique; FindDuplicate guards inserts.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "serviceId", Value: 1}, {Key: "userEmail", Value: 1}, {Key: "bookingDate", Value: 1}},
			Options: options.Index().SetName("service_email_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("email_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "paymentStatus", Value: 1}},
			Options: options.Index().SetName("payment_status_idx").SetSparse(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
