// file: database/redis.go
package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB stays nil when no redis address is configured; callers degrade
// to direct database queries.
var RDB *redis.Client
var Ctx = context.Background()

func InitRedis(addr string) {
	if addr == "" {
		log.Println("No redis address configured, running without cache.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
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
