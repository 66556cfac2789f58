package token

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"phonebook/internal/token/revocation"
)

// Verifier validates presented access tokens: RS256 signature against the
// configured public key, issuer and expiry claims, then the revocation list.
type Verifier struct {
	publicKey *rsa.PublicKey
	issuer    string
	trl       revocation.List
	parser    *jwt.Parser
}

// NewVerifier constructs a Verifier. The revocation list is required; use a
// MemoryList when Redis is not configured.
func NewVerifier(publicKey *rsa.PublicKey, issuer string, trl revocation.List) *Verifier {
	return &Verifier{
		publicKey: publicKey,
		issuer:    issuer,
		trl:       trl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify parses and verifies a raw bearer token, returning its claims.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrMissingToken
	}

	parsed, err := v.parser.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.publicKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrUnauthorized
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrUnauthorized
	}

	revoked, err := v.trl.IsRevoked(ctx, claims.ID)
	if err != nil {
		// Fail closed: an unreachable revocation list must not admit tokens.
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}

	return claims, nil
}
