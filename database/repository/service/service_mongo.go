package serviceRepo

import (
	"context"
	"errors"
	"fmt"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "services"

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection(CollectionName)}
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", id.Hex(), err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error creating service: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	service.ID = id
	return id, nil
}

func (r *MongoServiceRepo) Update(ctx context.Context, id primitive.ObjectID, update models.ServiceUpdate) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return 0, fmt.Errorf("error updating service %s: %w", id.Hex(), err)
	}
	return res.MatchedCount, nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("error deleting service %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
