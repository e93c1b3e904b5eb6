package catalog

import (
	"context"
	"time"

	serviceRepo "smarthome/database/repository/service"
	"smarthome/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogService manages the bookable service catalog.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) (primitive.ObjectID, error)
	UpdateService(ctx context.Context, id string, update models.ServiceUpdate) error
	DeleteService(ctx context.Context, id string) error
}

// DefaultCatalogService reads through cache when one is configured. Cache failures never fail a call.
type DefaultCatalogService struct {
	repo   serviceRepo.ServiceRepository
	cache  ServiceCache
	logger *zap.Logger
	now    func() time.Time
}

// NewCatalogService creates a catalog service. A nil cache disables caching.
func NewCatalogService(repo serviceRepo.ServiceRepository, cache ServiceCache, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.repo.GetAll(ctx)
}

func (s *DefaultCatalogService) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidServiceID
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("service cache read failed", zap.String("serviceId", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	service, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, service); err != nil {
			s.logger.Warn("service cache write failed", zap.String("serviceId", id), zap.Error(err))
		}
	}
	return service, nil
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, service *models.Service) (primitive.ObjectID, error) {
	service.ID = primitive.NilObjectID
	if service.CreatedAt.IsZero() {
		service.CreatedAt = s.now()
	}
	return s.repo.Create(ctx, service)
}

func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, update models.ServiceUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidServiceID
	}
	if update.IsEmpty() {
		return ErrNothingToUpdate
	}

	matched, err := s.repo.Update(ctx, oid, update)
	if err != nil {
		return err
	}
	s.evict(ctx, id)
	if matched == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidServiceID
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	s.evict(ctx, id)
	if deleted == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (s *DefaultCatalogService) evict(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("service cache eviction failed", zap.String("serviceId", id), zap.Error(err))
	}
}
