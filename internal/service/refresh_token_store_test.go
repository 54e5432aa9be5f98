package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryRefreshTokenStore_Lifecycle(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-1", "user-1", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := store.Exists("jti-1")
	if err != nil || !ok {
		t.Fatalf("expected stored jti to exist, ok=%v err=%v", ok, err)
	}

	if err := store.Revoke("jti-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err = store.Exists("jti-1")
	if err != nil || ok {
		t.Fatalf("expected revoked jti to be gone, ok=%v err=%v", ok, err)
	}
}

func TestMemoryRefreshTokenStore_ExpiresAndIgnoresEmpty(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("", "user-1", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := store.Exists(""); ok {
		t.Fatalf("expected empty jti never stored")
	}

	if err := store.Store("jti-short", "user-1", time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if ok, _ := store.Exists("jti-short"); ok {
		t.Fatalf("expected expired jti to be gone")
	}
}

// mockTokenRedis implementa redisTokenClient sobre un mapa.
type mockTokenRedis struct {
	values map[string]string
}

func (m *mockTokenRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if s, ok := value.(string); ok {
		m.values[key] = s
	}
	return redis.NewStatusResult("OK", nil)
}

func (m *mockTokenRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (m *mockTokenRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.values, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRedisRefreshTokenStore_Lifecycle(t *testing.T) {
	mock := &mockTokenRedis{values: make(map[string]string)}
	store := &redisRefreshTokenStore{client: mock, prefix: "auth:refresh:"}

	if err := store.Store("jti-1", "user-1", time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := mock.values["auth:refresh:jti-1"]; !ok {
		t.Fatalf("expected prefixed key stored, got %v", mock.values)
	}

	ok, err := store.Exists("jti-1")
	if err != nil || !ok {
		t.Fatalf("expected stored jti to exist, ok=%v err=%v", ok, err)
	}

	if err := store.Revoke("jti-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := store.Exists("jti-1"); ok {
		t.Fatalf("expected revoked jti to be gone")
	}
}
