package database

import (
	"context"
	"fmt"

	"medicapp-gateway/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis. A failed connection is not fatal:
// the session layer degrades to its in-memory store, so we return the
// client anyway and let callers observe errors per operation.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Warn("Could not connect to redis, session persistence degrades to in-memory",
			zap.Error(err))
	}

	return rdb
}
