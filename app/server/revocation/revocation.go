// Package revocation keeps the ids of tokens that were logged out before they
// expired. Without redis nothing is ever revoked and expiry is the only way a
// token stops working.
package revocation

import (
	"class-website/app/server/constants"
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

type List interface {
	Revoke(ctx context.Context, tokenID string, expires time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Enabled() bool
}

// Redis 每个被吊销的令牌一个 key ，过期时间与令牌一致
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Revoke(ctx context.Context, tokenID string, expires time.Time) error {
	ttl := time.Until(expires)
	if ttl <= 0 {
		// 已经过期，不需要记录
		return nil
	}

	if err := r.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeyRevokedToken, tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if err := r.rdb.Get(ctx, fmt.Sprintf(constants.CacheKeyRevokedToken, tokenID)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return true, nil
}

func (r *Redis) Enabled() bool {
	return true
}

// Noop 未配置 redis 时使用
type Noop struct{}

func (Noop) Revoke(context.Context, string, time.Time) error { return nil }

func (Noop) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func (Noop) Enabled() bool { return false }
