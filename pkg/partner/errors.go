package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorCategory classifies a failed call for programmatic branching.
type ErrorCategory int

// Error categories, one per entry of the status-code table.
const (
	BadInput ErrorCategory = iota
	Unauthorized
	Forbidden
	NotFound
	InvalidOperation
	UnsupportedDataFormat
	AlreadyExists
	TooManyRequests
	ServerBusy
	ServerError
)

var errorCategoryCodec = NewEnumCodec[ErrorCategory](map[ErrorCategory]string{
	BadInput:              "BadInput",
	Unauthorized:          "Unauthorized",
	Forbidden:             "Forbidden",
	NotFound:              "NotFound",
	InvalidOperation:      "InvalidOperation",
	UnsupportedDataFormat: "UnsupportedDataFormat",
	AlreadyExists:         "AlreadyExists",
	TooManyRequests:       "TooManyRequests",
	ServerBusy:            "ServerBusy",
	ServerError:           "ServerError",
})

// String returns the category name.
func (c ErrorCategory) String() string {
	return errorCategoryCodec.Name(c)
}

// MarshalJSON implements json.Marshaler.
func (c ErrorCategory) MarshalJSON() ([]byte, error) {
	return errorCategoryCodec.Marshal(c)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ErrorCategory) UnmarshalJSON(data []byte) error {
	return errorCategoryCodec.Unmarshal(data, c)
}

// CategoryForStatus maps an HTTP status code to its error category.
// Any status outside the table is a ServerError.
func CategoryForStatus(statusCode int) ErrorCategory {
	switch statusCode {
	case http.StatusBadRequest:
		return BadInput
	case http.StatusUnauthorized:
		return Unauthorized
	case http.StatusForbidden:
		return Forbidden
	case http.StatusNotFound:
		return NotFound
	case http.StatusMethodNotAllowed:
		return InvalidOperation
	case http.StatusNotAcceptable:
		return UnsupportedDataFormat
	case http.StatusConflict:
		return AlreadyExists
	case http.StatusTooManyRequests:
		return TooManyRequests
	case http.StatusServiceUnavailable:
		return ServerBusy
	default:
		return ServerError
	}
}

// FaultCode is the code of an API fault. The service sends it either as a
// string or as a number.
type FaultCode string

// UnmarshalJSON implements json.Unmarshaler.
func (c *FaultCode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("parsing fault code: %w", err)
		}

		*c = FaultCode(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("parsing fault code: %w", err)
	}

	*c = FaultCode(n.String())

	return nil
}

// APIFault is the structured error body returned on non-2xx responses.
type APIFault struct {
	Code        FaultCode `json:"code,omitempty"        yaml:"code,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Data        []any     `json:"data,omitempty"        yaml:"data,omitempty"`
	Source      string    `json:"source,omitempty"      yaml:"source,omitempty"`
}

// Error implements the error interface.
func (f *APIFault) Error() string {
	switch {
	case f.Code != "" && f.Description != "":
		return fmt.Sprintf("%s: %s", f.Code, f.Description)
	case f.Description != "":
		return f.Description
	case f.Code != "":
		return string(f.Code)
	default:
		return "unknown fault"
	}
}

// Empty reports whether the fault carries neither a code nor a description.
func (f *APIFault) Empty() bool {
	return f == nil || (f.Code == "" && f.Description == "")
}

// ParseFault parses an API fault from JSON.
func ParseFault(data []byte) (*APIFault, error) {
	var fault APIFault

	err := json.Unmarshal(data, &fault)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal api fault: %w", err)
	}

	return &fault, nil
}

// RequestSnapshot is the part of an outbound request kept for diagnostics.
type RequestSnapshot struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

// ResponseSnapshot is the part of a response kept for diagnostics. The body
// is the text that was read once from the wire.
type ResponseSnapshot struct {
	StatusCode   int
	ReasonPhrase string
	Headers      http.Header
	Body         string
}

// PartnerError is returned for every failed call that reached the service,
// and for credential failures detected before dispatch.
type PartnerError struct {
	Category       ErrorCategory
	Message        string
	Fault          *APIFault
	RequestContext RequestContext
	Request        *RequestSnapshot
	Response       *ResponseSnapshot
}

// NewPartnerError creates an error from a plain message.
func NewPartnerError(message string, requestContext RequestContext, category ErrorCategory) *PartnerError {
	return &PartnerError{
		Category:       category,
		Message:        message,
		RequestContext: requestContext,
	}
}

// NewFaultError creates an error from a decoded fault.
func NewFaultError(fault *APIFault, requestContext RequestContext, category ErrorCategory) *PartnerError {
	return &PartnerError{
		Category:       category,
		Message:        fault.Error(),
		Fault:          fault,
		RequestContext: requestContext,
	}
}

// Error implements the error interface.
func (e *PartnerError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("%s (category: %s, status: %d)", e.Message, e.Category, e.Response.StatusCode)
	}

	return fmt.Sprintf("%s (category: %s)", e.Message, e.Category)
}

// Unwrap exposes the fault so errors.As can reach it.
func (e *PartnerError) Unwrap() error {
	if e.Fault == nil {
		return nil
	}

	return e.Fault
}

// StatusCode returns the response status, or 0 when no response exists.
func (e *PartnerError) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrEndpointRequired        = errors.New("endpoint is required")
	ErrCredentialsRequired     = errors.New("credentials are required")
	ErrCredentialsNotUpdatable = errors.New("credentials cannot be updated")
	ErrEmptyIdentifier         = errors.New("identifier must not be empty")
	ErrNilRequest              = errors.New("request body must not be nil")
	ErrNoMoreItems             = errors.New("no more items")
	ErrUnknownAPI              = errors.New("unknown api")
	ErrInvalidEnumValue        = errors.New("invalid enum value")
)

// MissingIdentifier returns an ErrEmptyIdentifier naming the field.
func MissingIdentifier(name string) error {
	return fmt.Errorf("%w: %s", ErrEmptyIdentifier, name)
}

// CategoryOf returns the category of a PartnerError anywhere in the chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	partnerErr := &PartnerError{}
	if errors.As(err, &partnerErr) {
		return partnerErr.Category, true
	}

	return ServerError, false
}

func hasCategory(err error, category ErrorCategory) bool {
	got, ok := CategoryOf(err)

	return ok && got == category
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasCategory(err, NotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasCategory(err, Unauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasCategory(err, Forbidden)
}

// IsTooManyRequests checks if the call was throttled.
func IsTooManyRequests(err error) bool {
	return hasCategory(err, TooManyRequests)
}

// IsServerBusy checks if the service reported itself unavailable.
func IsServerBusy(err error) bool {
	return hasCategory(err, ServerBusy)
}

// IsCancellation reports whether err is the result of a cancelled or
// timed-out context rather than a service fault.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ReasonPhrase extracts the reason phrase from a status line such as
// "429 Too Many Requests", falling back to the standard text.
func ReasonPhrase(statusCode int, status string) string {
	prefix := strconv.Itoa(statusCode) + " "
	if len(status) > len(prefix) && status[:len(prefix)] == prefix {
		return status[len(prefix):]
	}

	if status != "" && status != strconv.Itoa(statusCode) {
		return status
	}

	return http.StatusText(statusCode)
}
