package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"jobswipe/internal/domain"
)

// RecommendationCache guarda la ultima tanda de recomendaciones por
// usuario. Se invalida en cada swipe para que el conjunto de avisos ya
// vistos quede consistente de inmediato.
type RecommendationCache interface {
	Get(ctx context.Context, userID string, limit int) ([]domain.Recommendation, bool)
	Set(ctx context.Context, userID string, limit int, recs []domain.Recommendation)
	Invalidate(ctx context.Context, userID string)
}

type cachedRecommendations struct {
	Limit           int                     `json:"limit"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

type memoryRecommendationCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	payload   cachedRecommendations
	expiresAt time.Time
}

func NewMemoryRecommendationCache(ttl time.Duration) RecommendationCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &memoryRecommendationCache{
		ttl:   ttl,
		items: make(map[string]memoryCacheEntry),
	}
}

func (c *memoryRecommendationCache) Get(_ context.Context, userID string, limit int) ([]domain.Recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.items[userID]
	if !ok {
		return nil, false
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(c.items, userID)
		return nil, false
	}
	if entry.payload.Limit != limit {
		return nil, false
	}
	return entry.payload.Recommendations, true
}

func (c *memoryRecommendationCache) Set(_ context.Context, userID string, limit int, recs []domain.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userID] = memoryCacheEntry{
		payload:   cachedRecommendations{Limit: limit, Recommendations: recs},
		expiresAt: time.Now().UTC().Add(c.ttl),
	}
}

func (c *memoryRecommendationCache) Invalidate(_ context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, userID)
}

// redisKVClient es el subconjunto de go-redis que usa el cache; permite
// inyectar un cliente falso en tests.
type redisKVClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRecommendationCache struct {
	client redisKVClient
	ttl    time.Duration
	prefix string
}

func NewRedisRecommendationCache(client *redis.Client, ttl time.Duration) RecommendationCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisRecommendationCache{
		client: client,
		ttl:    ttl,
		prefix: "rec:cache:",
	}
}

// Los errores de Redis se degradan a cache miss: el cache nunca bloquea
// una recomendacion.
func (c *redisRecommendationCache) Get(ctx context.Context, userID string, limit int) ([]domain.Recommendation, bool) {
	raw, err := c.client.Get(ctx, c.prefix+userID).Result()
	if err != nil {
		return nil, false
	}
	var payload cachedRecommendations
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false
	}
	if payload.Limit != limit {
		return nil, false
	}
	return payload.Recommendations, true
}

func (c *redisRecommendationCache) Set(ctx context.Context, userID string, limit int, recs []domain.Recommendation) {
	raw, err := json.Marshal(cachedRecommendations{Limit: limit, Recommendations: recs})
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+userID, raw, c.ttl)
}

func (c *redisRecommendationCache) Invalidate(ctx context.Context, userID string) {
	c.client.Del(ctx, c.prefix+userID)
}
