package partner

import (
	"github.com/google/uuid"
)

// DefaultLocale is used when a request context does not name one.
const DefaultLocale = "en-US"

// RequestContext carries the tracing identifiers attached to every request.
type RequestContext struct {
	CorrelationID uuid.UUID `json:"correlationId" yaml:"correlation_id"`
	RequestID     uuid.UUID `json:"requestId"     yaml:"request_id"`
	Locale        string    `json:"locale"        yaml:"locale"`
}

// NewRequestContext creates a root context with a fresh correlation id and
// no request id, so each call mints its own request id.
func NewRequestContext(locale string) RequestContext {
	if locale == "" {
		locale = DefaultLocale
	}

	return RequestContext{
		CorrelationID: uuid.New(),
		RequestID:     uuid.Nil,
		Locale:        locale,
	}
}

// Resolve returns the context for one outbound call. A root context without a
// request id yields a copy with a freshly minted one; otherwise the root is
// reused unchanged.
func (rc RequestContext) Resolve() RequestContext {
	if rc.RequestID != uuid.Nil {
		return rc
	}

	return RequestContext{
		CorrelationID: rc.CorrelationID,
		RequestID:     uuid.New(),
		Locale:        rc.Locale,
	}
}
