package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Insight responses are advisory and safe to reuse briefly, so they are the
// one thing worth caching. Domain aggregates are recomputed on every query.
const insightTTL = 10 * time.Minute

var client *redis.Client

// Init initializes the Redis connection. A failure leaves the cache disabled;
// every accessor degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

func insightKey(kind, entityID string) string {
	return fmt.Sprintf("insight:%s:%s", kind, entityID)
}

// GetInsight returns a cached insight response if present.
func GetInsight(ctx context.Context, kind, entityID string) (string, bool) {
	if client == nil {
		return "", false
	}
	val, err := client.Get(ctx, insightKey(kind, entityID)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// PutInsight caches an insight response for a short TTL.
func PutInsight(ctx context.Context, kind, entityID, payload string) {
	if client == nil {
		return
	}
	client.Set(ctx, insightKey(kind, entityID), payload, insightTTL)
}

// InvalidateInsight drops a cached response (entity changed underneath it).
func InvalidateInsight(ctx context.Context, kind, entityID string) {
	if client == nil {
		return
	}
	client.Del(ctx, insightKey(kind, entityID))
}

// Ping reports whether the cache is reachable (health endpoint).
func Ping(ctx context.Context) bool {
	if client == nil {
		return false
	}
	return client.Ping(ctx).Err() == nil
}
