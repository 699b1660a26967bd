package config

import (
	"context"
	"time"

	"smartcare-admin/internal/store"
	"smartcare-admin/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// NewStore memakai Redis kalau REDIS_ADDR diisi & bisa di-ping,
// selain itu jatuh ke store in-memory
func NewStore(cfg *Config) (store.Store, func() error) {
	if cfg.RedisAddr == "" {
		logger.Log.Warn("REDIS_ADDR kosong, memakai store in-memory")
		return store.NewMemoryStore(), func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.WithError(err).Warn("Redis tidak bisa dihubungi, memakai store in-memory")
		_ = client.Close()
		return store.NewMemoryStore(), func() error { return nil }
	}

	logger.Log.WithField("addr", cfg.RedisAddr).Info("Redis terhubung")
	return store.NewRedisStore(client, cfg.AppName+":"), client.Close
}
