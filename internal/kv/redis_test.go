package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	return miniredis.RunT(t)
}

func TestRedisStore_PutGet(t *testing.T) {
	server := newTestRedis(t)
	ctx := context.Background()

	store, err := OpenRedis(ctx, RedisOptions{Addr: server.Addr(), Prefix: "test:"})
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	defer store.Close()

	if _, found, err := store.Get(ctx, "ktra_tasks"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := store.Put(ctx, "ktra_tasks", "[]"); err != nil {
		t.Fatalf("put: %v", err)
	}

	value, found, err := store.Get(ctx, "ktra_tasks")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if value != "[]" {
		t.Fatalf("expected %q, got %q", "[]", value)
	}

	raw, err := server.Get("test:ktra_tasks")
	if err != nil {
		t.Fatalf("expected prefixed key in redis: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected raw value %q, got %q", "[]", raw)
	}
}

func TestRedisStore_GetReportsTransportErrors(t *testing.T) {
	server := newTestRedis(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	store := NewRedisStore(client, "")
	defer store.Close()

	server.Close()

	if _, _, err := store.Get(ctx, "k"); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
	if err := store.Put(ctx, "k", "v"); err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	server := newTestRedis(t)
	addr := server.Addr()
	server.Close()

	if _, err := OpenRedis(context.Background(), RedisOptions{Addr: addr}); err == nil {
		t.Fatal("expected ping error")
	}
}
