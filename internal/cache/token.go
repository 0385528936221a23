package cache

import (
	"context"
	"time"

	"ContactBook/config"
	"ContactBook/storage/redis"
)

const (
	tokenPrefix = "token"
)

// SetRefreshToken 存储 refresh token 到 Redis
// Key: cbook:token:refresh:{username}
// TTL: 跟随 JWT_REFRESH_DAYS
func SetRefreshToken(ctx context.Context, username, refreshToken string) error {
	key := redis.Key(tokenPrefix, "refresh", username)
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

// GetRefreshToken 从 Redis 获取 refresh token
func GetRefreshToken(ctx context.Context, username string) (string, error) {
	key := redis.Key(tokenPrefix, "refresh", username)
	return redis.Client().Get(ctx, key).Result()
}

// DeleteRefreshToken 删除 refresh token（登出）
func DeleteRefreshToken(ctx context.Context, username string) error {
	key := redis.Key(tokenPrefix, "refresh", username)
	return redis.Client().Del(ctx, key).Err()
}
