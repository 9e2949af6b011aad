package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"gamestore-backend/shared/config"
)

// BlacklistStore is the revocation store consulted on every
// authenticated request. Entries expire on their own; no sweep needed.
type BlacklistStore interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// TokenBlacklist is the Redis-backed BlacklistStore.
type TokenBlacklist struct {
	client *redis.Client
}

var globalTokenBlacklist *TokenBlacklist

// InitTokenBlacklist initializes the global Redis-backed blacklist
func InitTokenBlacklist() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	// Test connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalTokenBlacklist = &TokenBlacklist{client: client}

	log.Printf("✅ Redis token blacklist initialized - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetTokenBlacklist returns the global blacklist instance
func GetTokenBlacklist() *TokenBlacklist {
	if globalTokenBlacklist == nil {
		if err := InitTokenBlacklist(); err != nil {
			log.Printf("❌ Failed to initialize token blacklist: %v", err)
			return nil
		}
	}
	return globalTokenBlacklist
}

// blacklistKey generates the cache key for a token
func blacklistKey(token string) string {
	return "bl_" + token
}

// Add inserts a blacklist entry that lives exactly as long as the
// token it revokes.
func (tb *TokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if tb == nil || tb.client == nil {
		return fmt.Errorf("token blacklist not initialized")
	}

	if err := tb.client.Set(ctx, blacklistKey(token), "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}

	return nil
}

// Contains reports whether the token has been revoked. A missing key
// means the token was never blacklisted or the entry already expired.
func (tb *TokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	if tb == nil || tb.client == nil {
		return false, fmt.Errorf("token blacklist not initialized")
	}

	_, err := tb.client.Get(ctx, blacklistKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token blacklist: %v", err)
	}

	return true, nil
}

// Close closes the blacklist connection
func (tb *TokenBlacklist) Close() error {
	if tb != nil && tb.client != nil {
		return tb.client.Close()
	}
	return nil
}
