package paymentRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates lookup indexes on the payments collection.
// transactionId is indexed but not unique: dedup is a read before the insert.
func (r *MongoPaymentRepo) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetName("transaction_idx"),
		},
		{
			Keys:    bson.D{{Key: "trackingId", Value: 1}},
			Options: options.Index().SetName("tracking_idx"),
		},
		{
			Keys:    bson.D{{Key: "customerEmail", Value: 1}, {Key: "paidAt", Value: -1}},
			Options: options.Index().SetName("email_paid_at_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
