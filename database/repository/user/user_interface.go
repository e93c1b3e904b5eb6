package userRepo

import (
	"context"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetAll retrieves all users with an optional projection.
	GetAll(ctx context.Context, projection bson.M) ([]models.User, error)
	// GetByEmail retrieves a user by email address, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	// UpdateRole sets the role of the user with email and returns the matched count.
	UpdateRole(ctx context.Context, email, role string) (int64, error)
}
