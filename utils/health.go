package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every dependency answered the last ping.
func (h HealthStatus) Healthy() bool {
	if !h.Mongo {
		return false
	}
	for _, ok := range h.Redis {
		if !ok {
			return false
		}
	}
	return true
}

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

func MongoPinger(client *mongo.Client) PingFunc {
	return func(ctx context.Context) error { return client.Ping(ctx, nil) }
}

func RedisPinger(client *redis.Client) PingFunc {
	return func(ctx context.Context) error { return client.Ping(ctx).Err() }
}

// HealthMonitor keeps the latest dependency health snapshot in memory.
type HealthMonitor struct {
	mongo    PingFunc
	redis    []PingFunc
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(mongoPing PingFunc, redisPings []PingFunc, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{mongo: mongoPing, redis: redisPings, interval: interval}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var redisHealth []bool
	for _, ping := range m.redis {
		redisHealth = append(redisHealth, ping(ctx) == nil)
	}
	status := HealthStatus{
		Mongo:     m.mongo != nil && m.mongo(ctx) == nil,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks immediately, then on every tick until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
