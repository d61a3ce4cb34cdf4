package services

import (
	"context"
	"time"

	"github.com/NabeelAltarteer/GetEmpStatusBE/constants"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// StatusCache is the cache contract the orchestrator consumes. Every method
// is safe to call unconditionally: a degraded cache answers every Get with
// a miss and turns every write into a no-op.
type StatusCache interface {
	Get(ctx context.Context, key string, target interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string) int
	IsAvailable() bool
}

// CacheService implements StatusCache over Redis. A nil client puts it in
// permanently-degraded mode; runtime errors are absorbed and logged at
// debug level, never surfaced to the request path.
type CacheService struct {
	client    *redis.Client
	available bool
	logger    logger.Logger
}

// NewCacheService wraps a Redis client, which may be nil when the
// connection failed at startup.
func NewCacheService(client *redis.Client, log logger.Logger) *CacheService {
	return &CacheService{
		client:    client,
		available: client != nil,
		logger:    log,
	}
}

// EmployeeStatusKey builds the cache key for one national key
func EmployeeStatusKey(nationalKey string) string {
	return constants.EmployeeCachePrefix + nationalKey
}

// IsAvailable reports whether real cache I/O is happening
func (s *CacheService) IsAvailable() bool {
	return s.available
}

// Get reads and unmarshals the value under key into target, reporting
// whether a value was found. Any failure counts as a miss.
func (s *CacheService) Get(ctx context.Context, key string, target interface{}) bool {
	if !s.available {
		return false
	}
	cached, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Debug("cache get failed for key %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(cached), target); err != nil {
		s.logger.Debug("cache entry for key %s is unreadable: %v", key, err)
		return false
	}
	return true
}

// normalizeTTL substitutes the default lifetime for a non-positive ttl
func normalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return constants.DefaultCacheTTL
	}
	return ttl
}

// Set serializes value and stores it under key with the given TTL.
// A non-positive ttl falls back to the default.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !s.available {
		return
	}
	ttl = normalizeTTL(ttl)
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Debug("cache serialization failed for key %s: %v", key, err)
		return
	}
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.Debug("cache set failed for key %s: %v", key, err)
	}
}

// Delete removes a single key
func (s *CacheService) Delete(ctx context.Context, key string) {
	if !s.available {
		return
	}
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Debug("cache delete failed for key %s: %v", key, err)
	}
}

// DeleteByPrefix removes every key under prefix via SCAN and returns how
// many were deleted. Used for bulk invalidation of employee:* entries.
func (s *CacheService) DeleteByPrefix(ctx context.Context, prefix string) int {
	if !s.available {
		return 0
	}
	deleted := 0
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Debug("cache delete failed for key %s: %v", iter.Val(), err)
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		s.logger.Debug("cache scan failed for prefix %s: %v", prefix, err)
	}
	return deleted
}
