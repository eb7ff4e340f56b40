package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentialsConfigured = errors.New("no credentials configured, use 'partnercenter login' to add them")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
	ErrInvalidOutputFormat     = errors.New("invalid output format")
	ErrTenantRequired          = errors.New("--tenant is required for client credentials")
)

// Token errors.
var (
	ErrInvalidJWTFormat    = errors.New("invalid JWT format")
	ErrNoExpirationClaim   = errors.New("no expiration claim found")
	ErrFailedRetrieveToken = errors.New("failed to retrieve refreshed token")
)

// Validation errors.
var (
	ErrInvalidTimeRange = errors.New("invalid time range, start must be set and precede end")
)
