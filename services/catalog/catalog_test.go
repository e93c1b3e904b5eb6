package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smarthome/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memServiceRepo struct {
	mu    sync.Mutex
	docs  map[primitive.ObjectID]models.Service
	reads int
}

func newMemServiceRepo(services ...models.Service) *memServiceRepo {
	r := &memServiceRepo{docs: map[primitive.ObjectID]models.Service{}}
	for _, s := range services {
		r.docs[s.ID] = s
	}
	return r
}

func (r *memServiceRepo) GetAll(context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Service{}
	for _, s := range r.docs {
		out = append(out, s)
	}
	return out, nil
}

func (r *memServiceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	s, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memServiceRepo) Create(_ context.Context, s *models.Service) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = primitive.NewObjectID()
	r.docs[s.ID] = *s
	return s.ID, nil
}

func (r *memServiceRepo) Update(_ context.Context, id primitive.ObjectID, u models.ServiceUpdate) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.docs[id]
	if !ok {
		return 0, nil
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.ServiceName != nil {
		s.ServiceName = *u.ServiceName
	}
	r.docs[id] = s
	return 1, nil
}

func (r *memServiceRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	return 1, nil
}

type memCache struct {
	entries map[string]models.Service
	getErr  error
}

func newMemCache() *memCache { return &memCache{entries: map[string]models.Service{}} }

func (c *memCache) Get(_ context.Context, id string) (*models.Service, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	s, ok := c.entries[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (c *memCache) Set(_ context.Context, s *models.Service) error {
	c.entries[s.ID.Hex()] = *s
	return nil
}

func (c *memCache) Delete(_ context.Context, id string) error {
	delete(c.entries, id)
	return nil
}

func TestGetServiceByIDReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	svc := models.Service{ID: primitive.NewObjectID(), ServiceName: "Smart Lock Install", Price: 25.5}
	repo := newMemServiceRepo(svc)
	cache := newMemCache()
	s := NewCatalogService(repo, cache, zap.NewNop())

	first, err := s.GetServiceByID(ctx, svc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Smart Lock Install", first.ServiceName)
	assert.Contains(t, cache.entries, svc.ID.Hex())

	_, err = s.GetServiceByID(ctx, svc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.reads)
}

func TestGetServiceByIDFallsBackWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	svc := models.Service{ID: primitive.NewObjectID(), ServiceName: "Thermostat Setup"}
	cache := newMemCache()
	cache.getErr = errors.New("redis: connection refused")
	s := NewCatalogService(newMemServiceRepo(svc), cache, zap.NewNop())

	got, err := s.GetServiceByID(ctx, svc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Thermostat Setup", got.ServiceName)
}

func TestGetServiceByIDErrors(t *testing.T) {
	s := NewCatalogService(newMemServiceRepo(), nil, zap.NewNop())

	_, err := s.GetServiceByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidServiceID)

	_, err = s.GetServiceByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateServiceEvictsCache(t *testing.T) {
	ctx := context.Background()
	svc := models.Service{ID: primitive.NewObjectID(), ServiceName: "Camera Mount", Price: 30}
	cache := newMemCache()
	s := NewCatalogService(newMemServiceRepo(svc), cache, zap.NewNop())

	_, err := s.GetServiceByID(ctx, svc.ID.Hex())
	require.NoError(t, err)

	price := 45.0
	require.NoError(t, s.UpdateService(ctx, svc.ID.Hex(), models.ServiceUpdate{Price: &price}))
	assert.NotContains(t, cache.entries, svc.ID.Hex())

	got, err := s.GetServiceByID(ctx, svc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 45.0, got.Price)
}

func TestUpdateServiceValidation(t *testing.T) {
	ctx := context.Background()
	s := NewCatalogService(newMemServiceRepo(), nil, zap.NewNop())

	assert.ErrorIs(t, s.UpdateService(ctx, primitive.NewObjectID().Hex(), models.ServiceUpdate{}), ErrNothingToUpdate)

	name := "x"
	assert.ErrorIs(t, s.UpdateService(ctx, primitive.NewObjectID().Hex(), models.ServiceUpdate{ServiceName: &name}), ErrServiceNotFound)
	assert.ErrorIs(t, s.UpdateService(ctx, "bad", models.ServiceUpdate{ServiceName: &name}), ErrInvalidServiceID)
}

func TestCreateAndDeleteService(t *testing.T) {
	ctx := context.Background()
	repo := newMemServiceRepo()
	s := NewCatalogService(repo, newMemCache(), zap.NewNop())

	id, err := s.CreateService(ctx, &models.Service{ServiceName: "Hub Setup", Price: 15})
	require.NoError(t, err)
	assert.False(t, repo.docs[id].CreatedAt.IsZero())

	require.NoError(t, s.DeleteService(ctx, id.Hex()))
	assert.ErrorIs(t, s.DeleteService(ctx, id.Hex()), ErrServiceNotFound)
}

func TestServiceKey(t *testing.T) {
	assert.Equal(t, "service:abc", serviceKey("abc"))
}
