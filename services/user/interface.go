package user

import (
	"context"
	"time"

	userRepo "smarthome/database/repository/user"
	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// CreateUser inserts user unless the email is already registered. created is false in that case.
	CreateUser(ctx context.Context, user *models.User) (id primitive.ObjectID, created bool, err error)
	UpdateRole(ctx context.Context, email, role string) (int64, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewUserService(repo userRepo.UserRepository, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, logger: logger, now: time.Now}
}
