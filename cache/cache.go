package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// operationTimeout bounds individual Redis calls.
const operationTimeout = 5 * time.Second

// ContentChannel carries a notification every time a slide or gallery
// photo changes, so presentational clients can refresh their snapshot.
const ContentChannel = "content:updated"

var client *redis.Client

// InitRedis connects the process-wide client. An empty addr leaves the
// cache disabled; all helpers become no-ops then.
func InitRedis(addr string) error {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	client = rdb
	return nil
}

func Enabled() bool {
	return client != nil
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), operationTimeout)
}

func SetJSON(key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := opContext()
	defer cancel()
	return client.Set(ctx, key, data, ttl).Err()
}

// GetJSON reports whether the key was present and decoded into dest.
func GetJSON(key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}

	ctx, cancel := opContext()
	defer cancel()

	data, err := client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func Delete(keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}

	ctx, cancel := opContext()
	defer cancel()
	return client.Del(ctx, keys...).Err()
}

func Publish(channel, payload string) error {
	if client == nil {
		return nil
	}

	ctx, cancel := opContext()
	defer cancel()
	return client.Publish(ctx, channel, payload).Err()
}
