package partner

import (
	"context"
	"time"
)

// Credentials supplies the bearer token sent to the partner service.
type Credentials interface {
	PartnerServiceToken() string
	IsExpired() bool
}

// UpdatableCredentials can receive a refreshed token.
type UpdatableCredentials interface {
	Credentials
	SetToken(token string, expiresAt time.Time)
}

// RefreshCredentialsFunc renews expired credentials before a request is
// dispatched. It receives the context resolved for that request.
type RefreshCredentialsFunc func(ctx context.Context, credentials Credentials, requestContext RequestContext) error
