// Package redis holds the revocation backend: a small Redis connection
// whose only tenant is the revoked-token store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 5 * time.Second

	// defaultPoolSize is deliberately small; the only traffic is one
	// EXISTS per authenticated request plus a SET per logout.
	defaultPoolSize = 10
)

// Config carries the connection settings for the revocation backend.
type Config struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// Connect builds the client and verifies the backend with a ping, so a
// dead Redis stops the server at startup rather than turning every
// logout into a silent no-op.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
