package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB is nil when no redis address is configured; callers must treat
// caching as best-effort and fall through to the database.
var RDB *redis.Client
var Ctx = context.Background()

func InitRedis(addr, password string) {
	if addr == "" {
		log.Println("Redis not configured, leaderboard caching disabled.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	log.Println("Redis connection successfully established.")
}
