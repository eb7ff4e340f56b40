package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/internal/logging"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

const credentialsExpiredMessage = "The partner credentials have expired. Please provide updated credentials."

// Settings is the immutable configuration shared by every request of a client.
type Settings struct {
	APIVersion          string
	PartnerCenterClient string
	SDKVersion          string
	ApplicationName     string
	EnforceMFA          bool
	UserAgent           string
	RefreshCredentials  partner.RefreshCredentialsFunc
}

// DefaultSettings returns the settings used when a client is built without a root.
func DefaultSettings() Settings {
	return Settings{
		APIVersion:          constants.DefaultAPIVersion,
		PartnerCenterClient: constants.DefaultPartnerCenterClient,
		SDKVersion:          constants.SDKVersion,
	}
}

// RootContext supplies the per-client state read by every request.
type RootContext interface {
	Credentials() partner.Credentials
	RequestContext() partner.RequestContext
	Settings() Settings
}

// StaticRoot is a RootContext with fixed values.
type StaticRoot struct {
	Creds   partner.Credentials
	Context partner.RequestContext
	Config  Settings
}

// Credentials implements RootContext.
func (r StaticRoot) Credentials() partner.Credentials { return r.Creds }

// RequestContext implements RootContext.
func (r StaticRoot) RequestContext() partner.RequestContext { return r.Context }

// Settings implements RootContext.
func (r StaticRoot) Settings() Settings { return r.Config }

// Client is the request pipeline of the partner service.
type Client struct {
	baseURL      string
	root         RootContext
	httpClient   *retryablehttp.Client
	logger       partner.Logger
	debug        bool
	interceptors *partner.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger partner.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging of requests and responses.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables retries of connection failures. Responses are
// never retried, whatever their status code.
func WithRetryConfig(maxRetries int, minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = minWait
		c.httpClient.RetryWaitMax = maxWait
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithTimeout sets the timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithInterceptors sets the interceptor chain run around every call.
func WithInterceptors(chain *partner.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new HTTP client. A nil root sends unauthenticated
// requests under a fresh correlation id with default settings.
func NewClient(baseURL string, root RootContext, opts ...Option) *Client {
	if root == nil {
		root = StaticRoot{
			Context: partner.NewRequestContext(partner.DefaultLocale),
			Config:  DefaultSettings(),
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = connectionRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		root:       root,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil && client.httpClient.RetryMax > 0 {
		client.httpClient.Logger = logging.Leveled(client.logger)
	}

	return client
}

// WithRoot returns a client that shares the transport of c but reads its
// state from root.
func (c *Client) WithRoot(root RootContext) *Client {
	clone := *c
	clone.root = root

	return &clone
}

// Root returns the root context of the client.
func (c *Client) Root() RootContext {
	return c.root
}

// connectionRetryPolicy retries transport failures only. Any response,
// whatever its status, ends the call.
func connectionRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err == nil {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	// Decoder overrides the default JSON decoding of the response body.
	Decoder Decoder
}

// Do executes an HTTP request. When the service answers with a non-2xx
// status the response is returned together with a *partner.PartnerError.
//
//nolint:funlen,cyclop // one linear pipeline
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request cancelled: %w", err)
	}

	settings := c.root.Settings()
	requestContext := c.root.RequestContext().Resolve()

	credentials := c.root.Credentials()
	if credentials != nil && credentials.IsExpired() {
		if settings.RefreshCredentials == nil {
			return nil, partner.NewPartnerError(credentialsExpiredMessage, requestContext, partner.Unauthorized)
		}

		err := settings.RefreshCredentials(ctx, credentials, requestContext)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("request cancelled: %w", ctxErr)
			}

			return nil, fmt.Errorf("refreshing credentials: %w", err)
		}
	}

	fullURL, err := c.buildURL(settings.APIVersion, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = encodeBody(req.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := c.buildHeaders(settings, requestContext, credentials, bodyBytes != nil)

	for key, value := range req.Headers {
		headers.Add(key, value)
	}

	intercepted := &partner.Request{
		Method:         req.Method,
		Path:           req.Path,
		Headers:        headers,
		Body:           bodyBytes,
		RequestContext: requestContext,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if bodyBytes != nil {
		rawBody = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	snapshot := newRequestSnapshot(req.Method, fullURL, intercepted.Headers, bodyBytes)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":         req.Method,
			"url":            fullURL,
			"correlation_id": requestContext.CorrelationID.String(),
			"request_id":     requestContext.RequestID.String(),
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil {
			_ = httpResp.Body.Close()
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctxErr)
		}

		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &partner.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctxErr)
		}

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode:     httpResp.StatusCode,
		Status:         httpResp.Status,
		Headers:        httpResp.Header,
		Body:           respBody,
		RequestContext: requestContext,
		decoder:        req.Decoder,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":     httpResp.StatusCode,
			"duration":   time.Since(start).String(),
			"request_id": requestContext.RequestID.String(),
		})
	}

	var callErr error
	if !resp.IsSuccess() {
		callErr = newFailure(requestContext, snapshot, resp)
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &partner.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      callErr,
	})
	if err != nil && callErr == nil {
		return resp, err
	}

	if callErr != nil {
		return resp, callErr
	}

	return resp, nil
}

func (c *Client) buildHeaders(settings Settings, requestContext partner.RequestContext, credentials partner.Credentials, hasBody bool) http.Header {
	headers := make(http.Header)

	if settings.ApplicationName != "" {
		headers.Set(constants.HeaderApplicationName, settings.ApplicationName)
	}

	if settings.EnforceMFA {
		headers.Set(constants.HeaderEnforceMFA, constants.EnforceMFAValue)
	}

	headers.Set("Accept", constants.MediaTypeJSON)
	headers.Set(constants.HeaderClient, settings.PartnerCenterClient)
	headers.Set(constants.HeaderCorrelationID, requestContext.CorrelationID.String())
	headers.Set(constants.HeaderLocale, requestContext.Locale)
	headers.Set(constants.HeaderRequestID, requestContext.RequestID.String())
	headers.Set(constants.HeaderSDKVersion, settings.SDKVersion)

	if settings.UserAgent != "" {
		headers.Set("User-Agent", settings.UserAgent)
	}

	if credentials != nil {
		headers.Set("Authorization", constants.AuthorizationScheme+" "+credentials.PartnerServiceToken())
	}

	if hasBody {
		headers.Set("Content-Type", constants.MediaTypeJSON)
	}

	return headers
}

// buildURL resolves a relative path against the base URL under the API
// version prefix. A path that already starts with the version is not
// prefixed twice.
func (c *Client) buildURL(version, path string, query url.Values) (string, error) {
	relative := strings.TrimPrefix(path, "/")
	if version != "" && relative != version && !strings.HasPrefix(relative, version+"/") {
		relative = version + "/" + relative
	}

	fullURL := c.baseURL + "/" + relative

	if len(query) == 0 {
		return fullURL, nil
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("parsing request url: %w", err)
	}

	values := parsed.Query()

	for key, vals := range query {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

func encodeBody(body interface{}) ([]byte, error) {
	if raw, ok := body.([]byte); ok {
		return raw, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return data, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// GetLink performs a GET request for a server supplied link. The headers of
// the link are added to the request.
func (c *Client) GetLink(ctx context.Context, link partner.Link) (*Response, error) {
	method := link.Method
	if method == "" {
		method = http.MethodGet
	}

	return c.Do(ctx, &Request{
		Method:  method,
		Path:    link.URI,
		Headers: link.Headers,
	})
}

// Head performs a HEAD request.
func (c *Client) Head(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodHead,
		Path:   path,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
