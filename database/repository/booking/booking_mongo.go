package bookingRepo

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

const CollectionName = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the bookings collection of db.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(CollectionName)}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error creating booking: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	booking.ID = id
	return id, nil
}

func (r *MongoBookingRepo) FindDuplicate(ctx context.Context, serviceID, userEmail, bookingDate string) (*models.Booking, error) {
	filter := bson.M{
		"serviceId":   serviceID,
		"userEmail":   userEmail,
		"bookingDate": bookingDate,
	}
	return r.findOne(ctx, filter)
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"userEmail": email}, opts)
}

func (r *MongoBookingRepo) ListPaid(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"paymentStatus": models.PaymentStatusPaid})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, 0, fmt.Errorf("error updating booking %s: %w", id.Hex(), err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MongoBookingRepo) MarkPaid(ctx context.Context, ref, trackingID string) (int64, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return 0, nil
	}
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"trackingId":    trackingID,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, fmt.Errorf("error marking booking %s paid: %w", ref, err)
	}
	return res.MatchedCount, nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting booking %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
