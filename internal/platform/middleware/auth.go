package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"phonebook/internal/token"
	"phonebook/pkg/platform/httputil"
	"phonebook/pkg/requestcontext"
)

// TokenVerifier defines the interface for validating bearer tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*token.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token before they reach
// handler logic. On success the client ID, scopes, and token jti are stored in
// the request context.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeUnauthorized(w, token.ErrMissingToken.Error())
				return
			}

			claims, err := verifier.Verify(ctx, strings.TrimSpace(raw))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"request_id", requestID,
					"error", err,
				)
				writeUnauthorized(w, reasonFor(err))
				return
			}

			ctx = requestcontext.WithClientID(ctx, claims.ClientID)
			ctx = requestcontext.WithScopes(ctx, claims.Scopes)
			ctx = requestcontext.WithTokenID(ctx, claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// reasonFor keeps the response message aligned with the distinct verification
// failures; anything unexpected collapses to a generic description.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, token.ErrExpiredToken),
		errors.Is(err, token.ErrInvalidSignature),
		errors.Is(err, token.ErrRevokedToken),
		errors.Is(err, token.ErrMissingToken):
		return err.Error()
	default:
		return token.ErrUnauthorized.Error()
	}
}

// writeUnauthorized renders an RFC 6750 style bearer challenge with the JSON
// error envelope.
func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+description+`"`)
	httputil.WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": description,
	})
}
