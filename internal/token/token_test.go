package token

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/token/revocation"
)

const testIssuer = "phonebook-test"

func newKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func TestIssueAndVerify(t *testing.T) {
	key := newKeyPair(t)
	issuer := NewIssuer(key, testIssuer, time.Hour)
	verifier := NewVerifier(&key.PublicKey, testIssuer, revocation.NewMemoryList())

	issued, err := issuer.Issue("client-1", []string{"phonebook:write"})
	require.NoError(t, err)
	require.NotEmpty(t, issued.AccessToken)
	assert.Equal(t, int64(3600), issued.ExpiresIn)

	claims, err := verifier.Verify(context.Background(), issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.ClientID)
	assert.Equal(t, []string{"phonebook:write"}, claims.Scopes)
	assert.Equal(t, issued.TokenID, claims.ID)
}

func TestVerifyMissingToken(t *testing.T) {
	key := newKeyPair(t)
	verifier := NewVerifier(&key.PublicKey, testIssuer, revocation.NewMemoryList())

	_, err := verifier.Verify(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	key := newKeyPair(t)
	past := time.Now().Add(-2 * time.Hour)
	issuer := NewIssuer(key, testIssuer, time.Hour, WithIssuerClock(func() time.Time { return past }))
	verifier := NewVerifier(&key.PublicKey, testIssuer, revocation.NewMemoryList())

	issued, err := issuer.Issue("client-1", nil)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), issued.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongKey(t *testing.T) {
	signingKey := newKeyPair(t)
	otherKey := newKeyPair(t)

	issuer := NewIssuer(signingKey, testIssuer, time.Hour)
	verifier := NewVerifier(&otherKey.PublicKey, testIssuer, revocation.NewMemoryList())

	issued, err := issuer.Issue("client-1", nil)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), issued.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyWrongIssuer(t *testing.T) {
	key := newKeyPair(t)
	issuer := NewIssuer(key, "someone-else", time.Hour)
	verifier := NewVerifier(&key.PublicKey, testIssuer, revocation.NewMemoryList())

	issued, err := issuer.Issue("client-1", nil)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), issued.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRevokedToken(t *testing.T) {
	key := newKeyPair(t)
	trl := revocation.NewMemoryList()
	issuer := NewIssuer(key, testIssuer, time.Hour)
	verifier := NewVerifier(&key.PublicKey, testIssuer, trl)

	issued, err := issuer.Issue("client-1", nil)
	require.NoError(t, err)

	require.NoError(t, trl.RevokeToken(context.Background(), issued.TokenID, time.Hour))

	_, err = verifier.Verify(context.Background(), issued.AccessToken)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	key := newKeyPair(t)
	verifier := NewVerifier(&key.PublicKey, testIssuer, revocation.NewMemoryList())

	_, err := verifier.Verify(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
