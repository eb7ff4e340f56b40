package auth

import (
	"time"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// TokenCredentials holds a bearer token and its expiry. It is safe for use
// by concurrent requests.
type TokenCredentials struct {
	store *TokenStore
}

var _ partner.UpdatableCredentials = (*TokenCredentials)(nil)

// NewTokenCredentials creates credentials for a token. A zero expiresAt is
// read from the exp claim when the token is a JWT, and otherwise means the
// token does not expire.
func NewTokenCredentials(token string, expiresAt time.Time) *TokenCredentials {
	credentials := &TokenCredentials{store: NewTokenStore()}
	credentials.SetToken(token, expiresAt)

	return credentials
}

// PartnerServiceToken returns the current access token.
func (c *TokenCredentials) PartnerServiceToken() string {
	token := c.store.Get()
	if token == nil {
		return ""
	}

	return token.AccessToken
}

// IsExpired reports whether the token is missing or about to expire.
func (c *TokenCredentials) IsExpired() bool {
	return !c.store.Get().Valid()
}

// ExpiresAt returns the expiry of the current token.
func (c *TokenCredentials) ExpiresAt() time.Time {
	token := c.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// SetToken installs a new access token. An empty token clears the
// credentials.
func (c *TokenCredentials) SetToken(token string, expiresAt time.Time) {
	if token == "" {
		c.store.Clear()

		return
	}

	if expiresAt.IsZero() {
		if exp, err := ExpiryFromJWT(token); err == nil {
			expiresAt = exp
		}
	}

	c.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}
