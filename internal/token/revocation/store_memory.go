package revocation

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time.Now for deterministic tests.
type Clock func() time.Time

// MemoryList is an in-process revocation list for dev and tests. Production
// deployments with more than one instance should use RedisList so revocation
// state is shared.
type MemoryList struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	clock   Clock
}

// MemoryListOption configures a MemoryList instance.
type MemoryListOption func(*MemoryList)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) MemoryListOption {
	return func(l *MemoryList) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// NewMemoryList constructs an empty in-memory revocation list.
func NewMemoryList(opts ...MemoryListOption) *MemoryList {
	l := &MemoryList{
		entries: make(map[string]time.Time),
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// RevokeToken adds a token to the revocation list with TTL.
func (l *MemoryList) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[jti] = l.clock().Add(ttl)
	return nil
}

// IsRevoked checks if a token is in the revocation list. Expired entries are
// dropped lazily.
func (l *MemoryList) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	l.mu.RLock()
	expiresAt, ok := l.entries[jti]
	l.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if l.clock().After(expiresAt) {
		l.mu.Lock()
		delete(l.entries, jti)
		l.mu.Unlock()
		return false, nil
	}
	return true, nil
}
