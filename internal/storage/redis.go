package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis connects the shared client and pings it.
func InitRedis(ctx context.Context, addr, password string, db int) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return Rdb.Ping(ctx).Err()
}

func CloseRedis() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
