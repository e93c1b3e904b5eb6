package paymentRepo

import (
	"context"
	"errors"
	"fmt"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "payments"

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: db.Collection(CollectionName)}
}

func (r *MongoPaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"transactionId": transactionID})
}

func (r *MongoPaymentRepo) FindByTrackingID(ctx context.Context, trackingID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"trackingId": trackingID})
}

func (r *MongoPaymentRepo) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, filter).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching payment: %w", err)
	}
	return &payment, nil
}

func (r *MongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error creating payment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	payment.ID = id
	return id, nil
}

func (r *MongoPaymentRepo) List(ctx context.Context, customerEmail string) ([]models.Payment, error) {
	filter := bson.M{}
	if customerEmail != "" {
		filter["customerEmail"] = customerEmail
	}
	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments: %w", err)
	}
	return payments, nil
}
