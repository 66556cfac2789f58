// Package auth covers the token-issuing side of the service: the OAuth client
// registry and the authorize/token endpoints. Everything else in the API only
// verifies tokens; issuing stays here with the private key.
package auth

// Client is a registered OAuth client allowed to obtain access tokens.
type Client struct {
	ID     string
	Secret string
	Scopes []string
}
