package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storemerch/models"
)

// DefaultStorageKey is the Redis key the cart snapshot is stored under
const DefaultStorageKey = "cart-storage"

// RedisPersister keeps the cart snapshot in Redis under a single key, as an
// alternative to the on-disk slot when several instances share one cart.
type RedisPersister struct {
	client *redis.Client
	key    string
}

// NewRedisPersister connects to Redis at addr ("host:port" or a redis:// URL)
// and verifies the connection before returning
func NewRedisPersister(addr, key string) (*RedisPersister, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// Not a redis:// URL, treat it as a plain address
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}
	}

	if key == "" {
		key = DefaultStorageKey
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}

	return &RedisPersister{client: client, key: key}, nil
}

// Ensure RedisPersister implements Persister
var _ Persister = (*RedisPersister)(nil)

// Load reads the persisted cart lines; a missing key is a fresh cart
func (p *RedisPersister) Load() ([]models.CartLine, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	val, err := p.client.Get(ctx, p.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart from redis: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart from redis: %w", err)
	}
	return lines, nil
}

// Save overwrites the key with the full line list
func (p *RedisPersister) Save(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart for redis: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.client.Set(ctx, p.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart to redis: %w", err)
	}
	return nil
}

// Close releases the Redis connection
func (p *RedisPersister) Close() error {
	return p.client.Close()
}
