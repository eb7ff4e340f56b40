package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// TokenPersister defines the interface for persisting refreshed tokens.
type TokenPersister interface {
	SaveToken(token string, expiresAt time.Time) error
}

// PersistingCredentials wraps TokenCredentials and saves every installed
// token through a persister.
type PersistingCredentials struct {
	*TokenCredentials

	persister TokenPersister
	logger    partner.Logger
}

var _ partner.UpdatableCredentials = (*PersistingCredentials)(nil)

// NewPersistingCredentials creates credentials that persist refreshed tokens.
// A nil logger reports persistence failures on stderr.
func NewPersistingCredentials(credentials *TokenCredentials, persister TokenPersister, logger partner.Logger) *PersistingCredentials {
	return &PersistingCredentials{
		TokenCredentials: credentials,
		persister:        persister,
		logger:           logger,
	}
}

// SetToken installs the token and persists it. Persistence failures do not
// fail the request that triggered the refresh.
func (c *PersistingCredentials) SetToken(token string, expiresAt time.Time) {
	c.TokenCredentials.SetToken(token, expiresAt)

	if c.persister == nil {
		return
	}

	err := c.persister.SaveToken(token, c.ExpiresAt())
	if err == nil {
		return
	}

	if c.logger != nil {
		c.logger.Warn("failed to persist refreshed token", map[string]interface{}{"error": err.Error()})

		return
	}

	_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", err)
}
