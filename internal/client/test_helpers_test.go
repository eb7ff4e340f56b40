package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/partnercenter/internal/http"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without credentials for testing
	return NewWithHTTPClient(internalhttp.NewClient(baseURL, nil), nil)
}

// recordedRequest is one request seen by a testServer.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// testServer answers every request with a fixed status, headers and body and
// records what it received.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newTestServer(t *testing.T, statusCode int, headers map[string]string, response interface{}) *testServer {
	t.Helper()

	server := &testServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		server.mu.Lock()
		server.requests = append(server.requests, recordedRequest{
			Method:   request.Method,
			Path:     request.URL.Path,
			RawQuery: request.URL.RawQuery,
			Header:   request.Header.Clone(),
			Body:     body,
		})
		server.mu.Unlock()

		for key, value := range headers {
			writer.Header().Set(key, value)
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)

		switch typed := response.(type) {
		case nil:
		case string:
			_, _ = writer.Write([]byte(typed))
		default:
			_ = json.NewEncoder(writer).Encode(typed)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// Requests returns a copy of the recorded requests.
func (s *testServer) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

// Last returns the most recent request and fails the test when none arrived.
func (s *testServer) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests, "no request reached the server")

	return requests[len(requests)-1]
}

// TestGetOperation represents a generic read operation test case.
type TestGetOperation[TResponse any] struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrMessage    string
	Check         func(t *testing.T, result *TResponse)
}

// RunGetTests runs a series of read operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, testCase.StatusCode, nil, testCase.Response)

			result, err := getFunc(NewTestClient(server.URL))(context.Background())

			request := server.Last(t)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, testCase.ExpectedPath, request.Path)
			assert.Equal(t, testCase.ExpectedQuery, request.RawQuery)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// TestMissingIdentifier represents an operation called with a blank identifier.
type TestMissingIdentifier struct {
	Name       string
	Identifier string
	Call       func(context.Context, *Client) error
}

// RunMissingIdentifierTests checks that blank identifiers fail before any
// request is sent.
func RunMissingIdentifierTests(t *testing.T, tests []TestMissingIdentifier) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusOK, nil, map[string]interface{}{})

			err := testCase.Call(context.Background(), NewTestClient(server.URL))

			require.ErrorIs(t, err, partner.ErrEmptyIdentifier)
			assert.Contains(t, err.Error(), testCase.Identifier)
			assert.Empty(t, server.Requests())
		})
	}
}

// notFoundFault is the fault body the service returns for a missing resource.
func notFoundFault() map[string]interface{} {
	return map[string]interface{}{
		"code":        "600039",
		"description": "The resource was not found.",
	}
}
