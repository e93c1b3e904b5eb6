package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smarthome/models"

	"github.com/go-redis/redis/v8"
)

// ServiceCache stores catalog entries by id.
type ServiceCache interface {
	// Get returns the cached service, or nil when the key is absent.
	Get(ctx context.Context, id string) (*models.Service, error)
	Set(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
}

type RedisServiceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisServiceCache(client *redis.Client, ttl time.Duration) *RedisServiceCache {
	return &RedisServiceCache{client: client, ttl: ttl}
}

const cacheKeyPrefix = "service:"

func serviceKey(id string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, id)
}

func (c *RedisServiceCache) Get(ctx context.Context, id string) (*models.Service, error) {
	val, err := c.client.Get(ctx, serviceKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var service models.Service
	if err := json.Unmarshal(val, &service); err != nil {
		return nil, fmt.Errorf("corrupt cache entry %s: %w", serviceKey(id), err)
	}
	return &service, nil
}

func (c *RedisServiceCache) Set(ctx context.Context, service *models.Service) error {
	data, err := json.Marshal(service)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, serviceKey(service.ID.Hex()), data, c.ttl).Err()
}

func (c *RedisServiceCache) Delete(ctx context.Context, id string) error {
	return c.client.Del(ctx, serviceKey(id)).Err()
}
