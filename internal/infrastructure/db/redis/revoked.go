package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedTokenStore records logged-out bearer tokens until they would
// have expired anyway. Keys hold a token digest, never the token itself.
// Key format: revoked:<sha256(token)>
type RevokedTokenStore struct {
	client *redis.Client
}

// NewRevokedTokenStore creates a RevokedTokenStore wrapping the given
// Redis client.
func NewRevokedTokenStore(client *redis.Client) *RevokedTokenStore {
	return &RevokedTokenStore{client: client}
}

// Revoke marks the token as dead for ttlSeconds.
func (s *RevokedTokenStore) Revoke(ctx context.Context, token string, ttlSeconds int64) error {
	if ttlSeconds <= 0 {
		return nil
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if err := s.client.Set(ctx, s.key(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been logged out.
func (s *RevokedTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevokedTokenStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
