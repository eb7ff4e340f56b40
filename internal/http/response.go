package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// Decoder decodes a response body into v.
type Decoder func(data []byte, v interface{}) error

// JSONDecoder is the default response decoder.
func JSONDecoder(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Response represents an HTTP response. The body has been read in full.
type Response struct {
	StatusCode     int
	Status         string
	Headers        http.Header
	Body           []byte
	RequestContext partner.RequestContext

	decoder Decoder
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Location returns the Location header of the response.
func (r *Response) Location() string {
	return r.Headers.Get(constants.HeaderLocation)
}

// Decode decodes the body into v with the decoder of the request, or JSON.
// An empty body leaves v untouched.
func (r *Response) Decode(v interface{}) error {
	return r.decodeWith(nil, v)
}

func (r *Response) decodeWith(decoder Decoder, v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}

	if decoder == nil {
		decoder = r.decoder
	}

	if decoder == nil {
		decoder = JSONDecoder
	}

	err := decoder(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// DecodeInto decodes a successful response into a new T. An empty body
// yields the zero value of T. A non-nil decoder takes precedence over the
// decoder of the request.
func DecodeInto[T any](resp *Response, decoder Decoder) (T, error) {
	var result T

	err := resp.decodeWith(decoder, &result)
	if err != nil {
		var zero T

		return zero, err
	}

	return result, nil
}

// newFailure maps a non-2xx response to a PartnerError. An empty body keeps
// the reason phrase as message; a body that is not a fault, or a fault
// without code and description, keeps the raw body text.
func newFailure(requestContext partner.RequestContext, request *partner.RequestSnapshot, resp *Response) *partner.PartnerError {
	category := partner.CategoryForStatus(resp.StatusCode)
	reason := partner.ReasonPhrase(resp.StatusCode, resp.Status)

	var partnerErr *partner.PartnerError

	switch fault, err := partner.ParseFault(resp.Body); {
	case len(resp.Body) == 0:
		partnerErr = partner.NewPartnerError(reason, requestContext, category)
	case err != nil || fault.Empty():
		partnerErr = partner.NewPartnerError(string(resp.Body), requestContext, category)
	default:
		partnerErr = partner.NewFaultError(fault, requestContext, category)
	}

	partnerErr.Request = request
	partnerErr.Response = &partner.ResponseSnapshot{
		StatusCode:   resp.StatusCode,
		ReasonPhrase: reason,
		Headers:      resp.Headers.Clone(),
		Body:         string(resp.Body),
	}

	return partnerErr
}

// newRequestSnapshot copies the outbound request. The bearer token is masked.
func newRequestSnapshot(method, fullURL string, headers http.Header, body []byte) *partner.RequestSnapshot {
	cloned := headers.Clone()
	if cloned.Get("Authorization") != "" {
		cloned.Set("Authorization", constants.AuthorizationScheme+" "+constants.MaskedSecret)
	}

	var bodyCopy []byte
	if body != nil {
		bodyCopy = append([]byte(nil), body...)
	}

	return &partner.RequestSnapshot{
		Method:  method,
		URL:     fullURL,
		Headers: cloned,
		Body:    bodyCopy,
	}
}
