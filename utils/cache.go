// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"splashshine/config"
)

var (
	// CacheClient is the generic cache client, used for booking payment sessions.
	CacheClient *redis.Client
	// OTPCacheClient is the dedicated client for password reset codes.
	OTPCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitOTPCache initializes the Redis client for password reset codes.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for password reset codes.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitCache()
	InitOTPCache()
}
