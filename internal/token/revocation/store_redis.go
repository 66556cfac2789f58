package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var (
	isRevokedDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "phonebook_is_token_revoked_duration_ms",
		Help:    "Latency of token revocation checks in milliseconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})
)

const (
	// Redis key prefix for revoked tokens
	revokedTokenKeyPrefix = "trl:jti:"
)

// RedisList is a Redis-backed revocation list. This is the production
// implementation for deployments where multiple instances need to share
// revocation state.
type RedisList struct {
	client *redis.Client
}

// NewRedisList constructs a Redis-backed token revocation list.
func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

// RevokeToken adds a token to the revocation list with TTL.
// Uses Redis SET with expiry for atomic set-with-expiry.
func (l *RedisList) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	key := revokedTokenKeyPrefix + jti
	// Store "1" as a simple marker; the key existence is what matters
	return l.client.Set(ctx, key, "1", ttl).Err()
}

// IsRevoked checks if a token is in the revocation list.
// Returns false if the key doesn't exist (not revoked or expired).
func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	start := time.Now()
	defer func() {
		isRevokedDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	if jti == "" {
		return false, nil
	}
	key := revokedTokenKeyPrefix + jti
	_, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
