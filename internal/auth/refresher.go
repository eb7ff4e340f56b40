package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

const defaultAuthority = "https://login.microsoftonline.com"

// ClientCredentialsConfig holds application credentials of a partner tenant.
type ClientCredentialsConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	// TokenURL overrides the token endpoint derived from TenantID.
	TokenURL string
	Scopes   []string
}

// TokenEndpoint returns the token URL of the configuration.
func (c ClientCredentialsConfig) TokenEndpoint() string {
	if c.TokenURL != "" {
		return c.TokenURL
	}

	return fmt.Sprintf("%s/%s/oauth2/v2.0/token", defaultAuthority, strings.TrimSpace(c.TenantID))
}

func (c ClientCredentialsConfig) oauth2Config() *clientcredentials.Config {
	scopes := c.Scopes
	if len(scopes) == 0 {
		scopes = []string{constants.DefaultTokenScope}
	}

	return &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenEndpoint(),
		Scopes:       scopes,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
}

// FetchToken requests a new access token with the client credentials grant.
func FetchToken(ctx context.Context, config ClientCredentialsConfig) (*Token, error) {
	token, err := config.oauth2Config().Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrFailedRetrieveToken, err)
	}

	return &Token{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expiry,
	}, nil
}

// NewClientCredentialsRefresher returns a refresh callback that fetches a
// token with the client credentials grant and installs it on the
// credentials of the request.
func NewClientCredentialsRefresher(config ClientCredentialsConfig) partner.RefreshCredentialsFunc {
	return func(ctx context.Context, credentials partner.Credentials, _ partner.RequestContext) error {
		updatable, ok := credentials.(partner.UpdatableCredentials)
		if !ok {
			return partner.ErrCredentialsNotUpdatable
		}

		token, err := FetchToken(ctx, config)
		if err != nil {
			return err
		}

		updatable.SetToken(token.AccessToken, token.ExpiresAt)

		return nil
	}
}
