package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	partnerhttp "github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

// MockCredentials for testing.
type MockCredentials struct {
	mu      sync.Mutex
	token   string
	expired bool
}

func (m *MockCredentials) PartnerServiceToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token
}

func (m *MockCredentials) IsExpired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.expired
}

func (m *MockCredentials) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.expired = !expiresAt.After(time.Now())
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func newRoot(credentials partner.Credentials) partnerhttp.StaticRoot {
	return partnerhttp.StaticRoot{
		Creds:   credentials,
		Context: partner.NewRequestContext("en-GB"),
		Config:  partnerhttp.DefaultSettings(),
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		root := newRoot(&MockCredentials{token: "test-token"})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/products", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "Partner Center Go SDK", request.Header.Get("MS-PartnerCenter-Client"))
			assert.Equal(t, root.Context.CorrelationID.String(), request.Header.Get("MS-CorrelationId"))
			assert.Equal(t, "en-GB", request.Header.Get("X-Locale"))
			assert.NotEmpty(t, request.Header.Get("MS-RequestId"))
			assert.NotEqual(t, uuid.Nil.String(), request.Header.Get("MS-RequestId"))
			assert.NotEmpty(t, request.Header.Get("MS-SdkVersion"))
			assert.Empty(t, request.Header.Get("MS-PartnerCenter-Application"))
			assert.Empty(t, request.Header.Get("MS-Enforce-MFA"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "DZH318Z0BQ3Q", "title": "Windows Server"})
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, root)

		resp, err := client.Do(context.Background(), &partnerhttp.Request{
			Method: "GET",
			Path:   "products",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "DZH318Z0BQ3Q", result["id"])
	})

	t.Run("optional headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Contoso Portal", request.Header.Get("MS-PartnerCenter-Application"))
			assert.Equal(t, "True", request.Header.Get("MS-Enforce-MFA"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		root := newRoot(&MockCredentials{token: "test-token"})
		root.Config.ApplicationName = "Contoso Portal"
		root.Config.EnforceMFA = true

		client := partnerhttp.NewClient(server.URL, root)

		_, err := client.Get(context.Background(), "roles", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/products", request.URL.Path)
			assert.Equal(t, "country=US&reservationScope=public&targetView=Azure+RI", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		query := url.Values{}
		query.Set("country", "US")
		query.Set("targetView", "Azure RI")
		query.Set("reservationScope", "public")

		resp, err := client.Get(context.Background(), "products", query)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("empty query leaves uri unchanged", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/roles", request.URL.Path)
			assert.Empty(t, request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "roles", url.Values{})
		require.NoError(t, err)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Azure", body["productFamily"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "productUpgrades/eligibility", map[string]string{"productFamily": "Azure"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom headers are additive", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Len(t, request.Header.Values("MS-RequestId"), 2)
			assert.Equal(t, "caller-supplied", request.Header.Values("MS-RequestId")[1])
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &partnerhttp.Request{
			Method: "GET",
			Path:   "roles",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
				"MS-RequestId":    "caller-supplied",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := partnerhttp.NewClient(server.URL, nil, partnerhttp.WithLogger(logger), partnerhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "roles", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*partnerhttp.Client, context.Context) (*partnerhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "HEAD",
			method: "HEAD",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Head(ctx, "/test")
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *partnerhttp.Client, ctx context.Context) (*partnerhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/v1/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := partnerhttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_RequestContext(t *testing.T) {
	t.Parallel()
	t.Run("mints a request id per call", func(t *testing.T) {
		t.Parallel()

		var (
			mu         sync.Mutex
			requestIDs []string
		)

		root := newRoot(nil)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			requestIDs = append(requestIDs, request.Header.Get("MS-RequestId"))
			mu.Unlock()

			assert.Equal(t, root.Context.CorrelationID.String(), request.Header.Get("MS-CorrelationId"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, root)

		for j := 0; j < 3; j++ {
			resp, err := client.Get(context.Background(), "roles", nil)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, resp.RequestContext.RequestID)
		}

		require.Len(t, requestIDs, 3)
		assert.NotEqual(t, requestIDs[0], requestIDs[1])
		assert.NotEqual(t, requestIDs[1], requestIDs[2])
	})

	t.Run("reuses a fixed request id", func(t *testing.T) {
		t.Parallel()

		fixed := uuid.New()
		root := newRoot(nil)
		root.Context.RequestID = fixed

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, fixed.String(), request.Header.Get("MS-RequestId"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, root)

		for j := 0; j < 2; j++ {
			_, err := client.Get(context.Background(), "roles", nil)
			require.NoError(t, err)
		}
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ExpiredCredentials(t *testing.T) {
	t.Parallel()
	t.Run("fails before dispatch without a refresh callback", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, newRoot(&MockCredentials{token: "stale", expired: true}))

		resp, err := client.Get(context.Background(), "roles", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.Equal(t, int32(0), hits.Load())

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		assert.Equal(t, partner.Unauthorized, partnerErr.Category)
		assert.Contains(t, partnerErr.Message, "credentials have expired")
		assert.Nil(t, partnerErr.Response)
		assert.True(t, partner.IsUnauthorized(err))
	})

	t.Run("refreshes before dispatch", func(t *testing.T) {
		t.Parallel()

		var refreshedWith partner.RequestContext

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer fresh-token", request.Header.Get("Authorization"))
			assert.Equal(t, refreshedWith.RequestID.String(), request.Header.Get("MS-RequestId"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		credentials := &MockCredentials{token: "stale", expired: true}
		root := newRoot(credentials)
		root.Config.RefreshCredentials = func(ctx context.Context, creds partner.Credentials, rc partner.RequestContext) error {
			refreshedWith = rc

			updatable, ok := creds.(partner.UpdatableCredentials)
			require.True(t, ok)
			updatable.SetToken("fresh-token", time.Now().Add(time.Hour))

			return nil
		}

		client := partnerhttp.NewClient(server.URL, root)

		_, err := client.Get(context.Background(), "roles", nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, refreshedWith.RequestID)
		assert.Equal(t, root.Context.CorrelationID, refreshedWith.CorrelationID)
		assert.False(t, credentials.IsExpired())
	})

	t.Run("refresh failure is returned", func(t *testing.T) {
		t.Parallel()

		errRefresh := errors.New("token endpoint unavailable")

		root := newRoot(&MockCredentials{token: "stale", expired: true})
		root.Config.RefreshCredentials = func(context.Context, partner.Credentials, partner.RequestContext) error {
			return errRefresh
		}

		client := partnerhttp.NewClient("http://127.0.0.1:1", root)

		_, err := client.Get(context.Background(), "roles", nil)
		require.ErrorIs(t, err, errRefresh)
	})
}

func TestClient_StatusCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   int
		category partner.ErrorCategory
	}{
		{http.StatusBadRequest, partner.BadInput},
		{http.StatusUnauthorized, partner.Unauthorized},
		{http.StatusForbidden, partner.Forbidden},
		{http.StatusNotFound, partner.NotFound},
		{http.StatusMethodNotAllowed, partner.InvalidOperation},
		{http.StatusNotAcceptable, partner.UnsupportedDataFormat},
		{http.StatusConflict, partner.AlreadyExists},
		{http.StatusTooManyRequests, partner.TooManyRequests},
		{http.StatusServiceUnavailable, partner.ServerBusy},
		{http.StatusInternalServerError, partner.ServerError},
		{http.StatusBadGateway, partner.ServerError},
		{http.StatusTeapot, partner.ServerError},
		{http.StatusMultipleChoices, partner.ServerError},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(http.StatusText(testCase.status), func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(testCase.status)
			}))
			defer server.Close()

			client := partnerhttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "roles", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)

			category, ok := partner.CategoryOf(err)
			require.True(t, ok)
			assert.Equal(t, testCase.category, category)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_FaultHandling(t *testing.T) {
	t.Parallel()
	t.Run("fault body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(writer, `{"code":"NotFound","description":"x"}`)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, newRoot(&MockCredentials{token: "secret-token"}))

		resp, err := client.Get(context.Background(), "products/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.True(t, partner.IsNotFound(err))

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		require.NotNil(t, partnerErr.Fault)
		assert.Equal(t, partner.FaultCode("NotFound"), partnerErr.Fault.Code)
		assert.Equal(t, "x", partnerErr.Fault.Description)
		assert.Equal(t, resp.RequestContext, partnerErr.RequestContext)

		fault := &partner.APIFault{}
		require.ErrorAs(t, err, &fault)
		assert.Equal(t, "x", fault.Description)

		require.NotNil(t, partnerErr.Request)
		assert.Equal(t, "GET", partnerErr.Request.Method)
		assert.Contains(t, partnerErr.Request.URL, "/v1/products/missing")
		assert.Equal(t, "Bearer ***", partnerErr.Request.Headers.Get("Authorization"))
		require.NotNil(t, partnerErr.Response)
		assert.Equal(t, "Not Found", partnerErr.Response.ReasonPhrase)
		assert.JSONEq(t, `{"code":"NotFound","description":"x"}`, partnerErr.Response.Body)
	})

	t.Run("numeric fault code", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(writer, `{"code":600039,"description":"Invalid country","source":"PartnerCenter"}`)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "products", nil)

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		assert.Equal(t, partner.BadInput, partnerErr.Category)
		assert.Equal(t, partner.FaultCode("600039"), partnerErr.Fault.Code)
		assert.Equal(t, "PartnerCenter", partnerErr.Fault.Source)
	})

	t.Run("empty body uses reason phrase", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "products", nil)

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		assert.Equal(t, partner.TooManyRequests, partnerErr.Category)
		assert.Equal(t, "Too Many Requests", partnerErr.Message)
		assert.Nil(t, partnerErr.Fault)
		assert.True(t, partner.IsTooManyRequests(err))
	})

	t.Run("unparseable body uses raw text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(writer, "<html>upstream failed</html>")
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "products", nil)

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		assert.Equal(t, partner.ServerError, partnerErr.Category)
		assert.Equal(t, "<html>upstream failed</html>", partnerErr.Message)
		assert.Nil(t, partnerErr.Fault)
	})

	t.Run("empty fault uses raw text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(writer, `{"unexpected":"shape"}`)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "products", nil)

		partnerErr := &partner.PartnerError{}
		require.ErrorAs(t, err, &partnerErr)
		assert.Equal(t, partner.AlreadyExists, partnerErr.Category)
		assert.Equal(t, `{"unexpected":"shape"}`, partnerErr.Message)
	})
}

func TestClient_Cancellation(t *testing.T) {
	t.Parallel()
	t.Run("cancelled before dispatch", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		client := partnerhttp.NewClient(server.URL, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Get(ctx, "products", nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.True(t, partner.IsCancellation(err))
		assert.Equal(t, int32(0), hits.Load())

		_, isPartnerErr := partner.CategoryOf(err)
		assert.False(t, isPartnerErr)
	})

	t.Run("deadline during dispatch", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			select {
			case <-request.Context().Done():
			case <-release:
			}
		}))
		defer server.Close()
		defer close(release)

		client := partnerhttp.NewClient(server.URL, nil, partnerhttp.WithRetryConfig(2, time.Millisecond, 2*time.Millisecond))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "products", nil)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		_, isPartnerErr := partner.CategoryOf(err)
		assert.False(t, isPartnerErr)
	})
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		status := status
		t.Run("does not retry "+http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var attempts atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts.Add(1)
				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := partnerhttp.NewClient(server.URL, nil, partnerhttp.WithRetryConfig(3, time.Millisecond, 10*time.Millisecond))

			resp, err := client.Get(context.Background(), "products", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.Equal(t, int32(1), attempts.Load())
		})
	}

	t.Run("connection failure is not a partner error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		target := server.URL
		server.Close()

		client := partnerhttp.NewClient(target, nil, partnerhttp.WithRetryConfig(1, time.Millisecond, 2*time.Millisecond))

		resp, err := client.Get(context.Background(), "products", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		_, isPartnerErr := partner.CategoryOf(err)
		assert.False(t, isPartnerErr)
	})
}

func TestClient_GetLink(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/roles/r1/usermembers", request.URL.Path)
		assert.Equal(t, "size=20&seekOperation=Next", request.URL.RawQuery)
		assert.Equal(t, "token-123", request.Header.Get("MS-ContinuationToken"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := partnerhttp.NewClient(server.URL, nil)

	for _, uri := range []string{"/roles/r1/usermembers?size=20&seekOperation=Next", "/v1/roles/r1/usermembers?size=20&seekOperation=Next"} {
		_, err := client.GetLink(context.Background(), partner.Link{
			URI:     uri,
			Headers: map[string]string{"MS-ContinuationToken": "token-123"},
		})
		require.NoError(t, err)
	}
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "traced", request.Header.Get("X-Trace"))
		writer.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var seen *partner.Response

	chain := partner.NewInterceptorChain()
	chain.AddRequestInterceptor(partner.HeaderInterceptor(map[string]string{"X-Trace": "traced"}))
	chain.AddResponseInterceptor(func(ctx context.Context, req *partner.Request, resp *partner.Response) error {
		seen = resp

		return nil
	})

	client := partnerhttp.NewClient(server.URL, nil, partnerhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "products", nil)
	require.Error(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, 404, seen.StatusCode)
	assert.True(t, partner.IsNotFound(seen.Error))
}
