// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them; services and handlers read them
// without importing net/http.
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	clientIDKey    struct{}
	tokenIDKey     struct{}
	scopesKey      struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyClientID    = clientIDKey{}
	ContextKeyTokenID     = tokenIDKey{}
	ContextKeyScopes      = scopesKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// ClientID retrieves the authenticated OAuth client ID from the context.
func ClientID(ctx context.Context) string {
	if clientID, ok := ctx.Value(ContextKeyClientID).(string); ok {
		return clientID
	}
	return ""
}

// WithClientID injects a client ID into the context.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ContextKeyClientID, clientID)
}

// TokenID retrieves the jti of the presented access token.
func TokenID(ctx context.Context) string {
	if tokenID, ok := ctx.Value(ContextKeyTokenID).(string); ok {
		return tokenID
	}
	return ""
}

// WithTokenID injects a token jti into the context.
func WithTokenID(ctx context.Context, tokenID string) context.Context {
	return context.WithValue(ctx, ContextKeyTokenID, tokenID)
}

// Scopes retrieves the token scopes from the context.
func Scopes(ctx context.Context) []string {
	if scopes, ok := ctx.Value(ContextKeyScopes).([]string); ok {
		return scopes
	}
	return nil
}

// WithScopes injects token scopes into the context.
func WithScopes(ctx context.Context, scopes []string) context.Context {
	return context.WithValue(ctx, ContextKeyScopes, scopes)
}

// RequestID retrieves the request ID set by middleware.
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now returns the request time if middleware recorded one, falling back to
// time.Now. Tests inject a fixed time with WithTime for deterministic
// timestamps.
func Now(ctx context.Context) time.Time {
	if ts, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return ts
	}
	return time.Now()
}

// WithTime injects a fixed request time into the context.
func WithTime(ctx context.Context, ts time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, ts)
}
