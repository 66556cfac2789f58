// Package revocation tracks access tokens that were invalidated before their
// natural expiry. Entries carry a TTL matching the token lifetime so the list
// stays small without a sweeper.
package revocation

import (
	"context"
	"fmt"
	"time"
)

// List is consulted by the token verifier on every authenticated request.
type List interface {
	// RevokeToken adds a token jti to the revocation list for ttl.
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked reports whether the jti is currently revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	return nil
}
