package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"phonebook/internal/auth"
	"phonebook/internal/token"
	dErrors "phonebook/pkg/domain-errors"
	"phonebook/pkg/platform/sentinel"
)

// ClientStore resolves registered OAuth clients.
type ClientStore interface {
	FindByID(ctx context.Context, id string) (*auth.Client, error)
}

// Service implements token issuance for the two supported flows.
type Service struct {
	clients ClientStore
	issuer  *token.Issuer
}

// New constructs an auth Service.
func New(clients ClientStore, issuer *token.Issuer) *Service {
	return &Service{clients: clients, issuer: issuer}
}

func invalidClient() *dErrors.Error {
	// One message for unknown client and bad secret so callers cannot probe
	// which client IDs exist.
	return dErrors.New(dErrors.CodeUnauthorized, "invalid client credentials")
}

// IssueClientCredentials validates the client id/secret pair and issues an
// access token (RFC 6749 client credentials grant).
func (s *Service) IssueClientCredentials(ctx context.Context, clientID, clientSecret string) (*token.IssuedToken, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invalidClient()
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(client.Secret), []byte(clientSecret)) != 1 {
		return nil, invalidClient()
	}

	issued, err := s.issuer.Issue(client.ID, client.Scopes)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return issued, nil
}

// Authorize implements the legacy authorize endpoint: the client is looked up
// and a token is issued immediately, mirroring the original's auto-approval of
// its single user.
func (s *Service) Authorize(ctx context.Context, clientID string) (*token.IssuedToken, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invalidClient()
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	issued, err := s.issuer.Issue(client.ID, client.Scopes)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return issued, nil
}
