package user

import (
	"context"
	"strings"

	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx, nil)
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *DefaultUserService) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, bool, error) {
	existing, err := s.Repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	if existing != nil {
		return primitive.NilObjectID, false, nil
	}

	user.ID = primitive.NilObjectID
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now()
	}

	id, err := s.Repo.Create(ctx, user)
	if err != nil {
		// Lost a race with a concurrent sign-up for the same email.
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, false, nil
		}
		return primitive.NilObjectID, false, err
	}
	s.logger.Info("User created", zap.String("email", user.Email))
	return id, true, nil
}

// UpdateRole sets the role for email and returns the matched count.
func (s *DefaultUserService) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	if strings.TrimSpace(role) == "" {
		return 0, ErrMissingRole
	}
	matched, err := s.Repo.UpdateRole(ctx, email, role)
	if err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, ErrUserNotFound
	}
	return matched, nil
}
