package token

import (
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs access tokens for authenticated clients.
type Issuer struct {
	privateKey *rsa.PrivateKey
	issuer     string
	ttl        time.Duration
	clock      func() time.Time
}

// IssuerOption configures an Issuer instance.
type IssuerOption func(*Issuer)

// WithIssuerClock sets the clock function for testability.
func WithIssuerClock(clock func() time.Time) IssuerOption {
	return func(i *Issuer) {
		if clock != nil {
			i.clock = clock
		}
	}
}

// NewIssuer constructs an Issuer signing with the given RSA private key.
func NewIssuer(privateKey *rsa.PrivateKey, issuer string, ttl time.Duration, opts ...IssuerOption) *Issuer {
	i := &Issuer{
		privateKey: privateKey,
		issuer:     issuer,
		ttl:        ttl,
		clock:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(i)
		}
	}
	return i
}

// IssuedToken carries the signed token together with metadata callers render
// in the token response.
type IssuedToken struct {
	AccessToken string
	TokenID     string
	ExpiresIn   int64
}

// Issue signs a new access token for the client.
func (i *Issuer) Issue(clientID string, scopes []string) (*IssuedToken, error) {
	now := i.clock()
	jti := uuid.NewString()
	newToken := jwt.NewWithClaims(jwt.SigningMethodRS256, Claims{
		ClientID: clientID,
		Scopes:   scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    i.issuer,
			ID:        jti,
		},
	})

	signed, err := newToken.SignedString(i.privateKey)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{
		AccessToken: signed,
		TokenID:     jti,
		ExpiresIn:   int64(i.ttl.Seconds()),
	}, nil
}

// TTL exposes the configured token lifetime, used when revoking so the
// revocation entry outlives the token.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}
