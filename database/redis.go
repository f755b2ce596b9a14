package database

import (
	"context"
	"fmt"
	"olympic_ticketing/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client backing the per-session cart store.
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		panic("failed to connect redis")
	}

	fmt.Println("Connection Opened to Redis")
}
