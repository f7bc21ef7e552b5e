package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const maxWatchRetries = 10

// errSkipWrite aborts an Update without writing anything.
var errSkipWrite = errors.New("skip write")

// Internal adapter interface to enable testing without a real Redis server.
// Get returns redis.Nil for a missing key.
type redisAPI interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	SetAndPush(ctx context.Context, key string, value []byte, listKey, member string) error
	LRange(ctx context.Context, key string) ([]string, error)
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}

var _ redisAPI = (*Client)(nil)

// Client adapts *redis.Client to the operations the repositories need.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	return c.rdb.Get(ctx, key).Bytes()
}

func (c *Client) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	return c.rdb.SetNX(ctx, key, value, 0).Result()
}

// SetAndPush writes key and appends member to listKey in one MULTI/EXEC.
func (c *Client) SetAndPush(ctx context.Context, key string, value []byte, listKey, member string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, value, 0)
		pipe.RPush(ctx, listKey, member)
		return nil
	})
	return err
}

func (c *Client) LRange(ctx context.Context, key string) ([]string, error) {
	return c.rdb.LRange(ctx, key, 0, -1).Result()
}

// Update runs an optimistic WATCH/MULTI read-modify-write on key.
// It returns redis.Nil when key does not exist.
func (c *Client) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := c.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("key %s changed concurrently %d times", key, maxWatchRetries)
}

// Publish sends payload to channel subscribers.
func (c *Client) Publish(ctx context.Context, channel string, payload []byte) error {
	return c.rdb.Publish(ctx, channel, payload).Err()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
