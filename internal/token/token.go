// Package token issues and verifies the RS256-signed access tokens guarding
// the phone book API. The private key lives only with the token endpoint;
// resource-side verification needs just the public key and the revocation
// list.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims for our access tokens.
type Claims struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// Verification failure modes. The middleware maps these to responses; anything
// else reduces to a generic unauthorized.
var (
	ErrMissingToken     = errors.New("missing bearer token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrRevokedToken     = errors.New("token has been revoked")
	ErrUnauthorized     = errors.New("invalid token")
)
