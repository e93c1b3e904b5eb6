package serviceRepo

import (
	"context"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines data access for catalog services.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetByID returns the service or nil when no document matches.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error)
	// Update applies the non-nil fields of update and returns the matched count.
	Update(ctx context.Context, id primitive.ObjectID, update models.ServiceUpdate) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
