package partner

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Request is the view of an outbound call that interceptors may inspect and
// change. Headers already carry the partner headers of the call.
type Request struct {
	Method         string
	Path           string
	Headers        http.Header
	Body           []byte
	RequestContext RequestContext
	Metadata       map[string]interface{}
}

// SetMetadata stores a value for interceptors that run later in the same call.
func (r *Request) SetMetadata(key string, value interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}

	r.Metadata[key] = value
}

// startedAt returns the time stored under key, if any.
func (r *Request) startedAt(key string) (time.Time, bool) {
	started, ok := r.Metadata[key].(time.Time)

	return started, ok
}

// Response is the outcome of a call. Error is the PartnerError of a non-2xx
// answer, or the transport error when no answer arrived.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent. An error aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after the response body was read, or after the
// call failed.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds the interceptors of a client in registration order.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs the request interceptors and stops at the
// first error. A nil chain does nothing.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor %d: %w", i, err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors and stops at the
// first error. A nil chain does nothing.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor %d: %w", i, err)
		}
	}

	return nil
}

// requestFields are the log fields identifying a call.
func requestFields(req *Request) map[string]interface{} {
	return map[string]interface{}{
		"method":         req.Method,
		"path":           req.Path,
		"locale":         req.RequestContext.Locale,
		"correlation_id": req.RequestContext.CorrelationID.String(),
		"request_id":     req.RequestContext.RequestID.String(),
	}
}

// LoggingInterceptor logs every outbound call at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("partner request", requestFields(req))

		return nil
	}
}

// LoggingResponseInterceptor logs the outcome of every call. Failures are
// logged at error level with their category.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := requestFields(req)
		fields["status_code"] = resp.StatusCode

		if resp.Error == nil {
			logger.Debug("partner response", fields)

			return nil
		}

		fields["error"] = resp.Error.Error()
		if category, ok := CategoryOf(resp.Error); ok {
			fields["category"] = category.String()
		}

		logger.Error("partner request failed", fields)

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request, replacing values
// of the same name.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics holds the call statistics of one endpoint.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	Throttled       int64
	ErrorCategories map[ErrorCategory]int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

func (m *Metrics) snapshot() Metrics {
	copied := *m
	copied.ErrorCategories = make(map[ErrorCategory]int64, len(m.ErrorCategories))

	for category, count := range m.ErrorCategories {
		copied.ErrorCategories[category] = count
	}

	return copied
}

// MetricsCollector aggregates Metrics per method and path. It is safe for
// concurrent use.
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
	}
}

// SetOnChange registers a callback that receives a snapshot after every
// recorded call. The callback runs outside the collector lock.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics of an endpoint.
func (m *MetricsCollector) GetMetrics(endpoint string) (Metrics, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if metrics, ok := m.metrics[endpoint]; ok {
		return metrics.snapshot(), true
	}

	return Metrics{}, false
}

// record adds one call to the endpoint and returns the new snapshot.
func (m *MetricsCollector) record(endpoint string, latency time.Duration, timed bool, resp *Response) (Metrics, func(string, Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		metrics = &Metrics{ErrorCategories: make(map[ErrorCategory]int64)}
		m.metrics[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if timed {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	if resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
		metrics.TotalErrors++

		category, ok := CategoryOf(resp.Error)
		if !ok && resp.StatusCode >= http.StatusBadRequest {
			category, ok = CategoryForStatus(resp.StatusCode), true
		}

		if ok {
			metrics.ErrorCategories[category]++

			if category == TooManyRequests || category == ServerBusy {
				metrics.Throttled++
			}
		}
	}

	return metrics.snapshot(), m.onChange
}

const metricsStartKey = "metrics.start"

// MetricsRequestInterceptor records the start time of a call.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		req.SetMetadata(metricsStartKey, time.Now())

		return nil
	}
}

// MetricsResponseInterceptor records the outcome of a call in collector.
// Endpoints are keyed by method and path.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := req.Method + " " + req.Path

		var latency time.Duration

		started, timed := req.startedAt(metricsStartKey)
		if timed {
			latency = time.Since(started)
		}

		snapshot, onChange := collector.record(endpoint, latency, timed, resp)
		if onChange != nil {
			onChange(endpoint, snapshot)
		}

		return nil
	}
}
