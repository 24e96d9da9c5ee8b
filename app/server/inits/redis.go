package inits

import (
	"class-website/app/server/revocation"
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// Redis 连接字符串为空时不启用令牌吊销，返回的 client 为 nil
func Redis(conn string) (*redis.Client, revocation.List, error) {
	if conn == "" {
		return nil, revocation.Noop{}, nil
	}

	redisOptions, err := redis.ParseURL(conn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis connection string: %w", err)
	}

	rdb := redis.NewClient(redisOptions)

	// 启动时确认可用
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, revocation.NewRedis(rdb), nil
}
