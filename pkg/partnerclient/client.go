// Package partnerclient provides the main entry point for creating partner service clients
package partnerclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/partnercenter/internal/auth"
	"github.com/fivetwenty-io/partnercenter/internal/client"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// New creates a new partner service client. The config is copied; the
// caller's value is not modified.
func New(ctx context.Context, config *partner.Config) (partner.Client, error) {
	if config == nil {
		return nil, partner.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, partner.ErrEndpointRequired
	}

	if config.Credentials == nil {
		return nil, partner.ErrCredentialsRequired
	}

	normalized := *config
	normalized.Endpoint = normalizeEndpoint(config.Endpoint)

	// Renew up front so the first call does not pay for it
	if normalized.Credentials.IsExpired() && normalized.RefreshCredentials != nil {
		err := normalized.RefreshCredentials(ctx, normalized.Credentials, normalized.RequestContext.Resolve())
		if err != nil {
			return nil, fmt.Errorf("refreshing credentials: %w", err)
		}
	}

	// Use the internal client implementation
	partnerClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return partnerClient, nil
}

// normalizeEndpoint trims a trailing slash and adds https:// when no scheme
// is present.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a new client with an endpoint and access token. The
// token expiry is read from its exp claim when it is a JWT.
func NewWithToken(ctx context.Context, endpoint, token string) (partner.Client, error) {
	return New(ctx, &partner.Config{
		Endpoint:    endpoint,
		Credentials: NewTokenCredentials(token, time.Time{}),
	})
}

// ClientCredentials identifies an application registered in the partner
// tenant.
type ClientCredentials struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// TokenURL overrides the token endpoint derived from TenantID.
	TokenURL string
	Scopes   []string
}

func (c ClientCredentials) config() auth.ClientCredentialsConfig {
	return auth.ClientCredentialsConfig{
		TenantID:     c.TenantID,
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		Scopes:       c.Scopes,
	}
}

// NewTokenCredentials returns credentials holding token. A zero expiresAt
// is read from the exp claim when the token is a JWT.
func NewTokenCredentials(token string, expiresAt time.Time) partner.UpdatableCredentials {
	return auth.NewTokenCredentials(token, expiresAt)
}

// NewClientCredentialsRefresher returns a refresh callback that renews
// updatable credentials with the client credentials grant.
func NewClientCredentialsRefresher(credentials ClientCredentials) partner.RefreshCredentialsFunc {
	return auth.NewClientCredentialsRefresher(credentials.config())
}

// NewWithClientCredentials creates a new client using the OAuth2 client
// credentials grant. The first token is fetched immediately and renewed
// whenever it expires.
func NewWithClientCredentials(ctx context.Context, endpoint string, credentials ClientCredentials) (partner.Client, error) {
	token, err := auth.FetchToken(ctx, credentials.config())
	if err != nil {
		return nil, err
	}

	return New(ctx, &partner.Config{
		Endpoint:           endpoint,
		Credentials:        auth.NewTokenCredentials(token.AccessToken, token.ExpiresAt),
		RefreshCredentials: NewClientCredentialsRefresher(credentials),
	})
}
