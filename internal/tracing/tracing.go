// Package tracing publishes one trace event per partner service call.
package tracing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
	"github.com/fivetwenty-io/partnercenter/pkg/partner"
)

const startKey = "trace_start"

// Publisher sends a message to a subject. *nats.Conn satisfies it.
type Publisher interface {
	Publish(subj string, data []byte) error
}

// Event describes one completed call.
type Event struct {
	Method        string    `json:"method"`
	Path          string    `json:"path"`
	StatusCode    int       `json:"statusCode,omitempty"`
	Category      string    `json:"category,omitempty"`
	Error         string    `json:"error,omitempty"`
	CorrelationID string    `json:"correlationId"`
	RequestID     string    `json:"requestId"`
	Duration      string    `json:"duration,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Tracer publishes trace events. Publish failures are logged and never
// fail the traced call.
type Tracer struct {
	publisher Publisher
	subject   string
	logger    partner.Logger
}

// New creates a tracer. An empty subject uses the default trace subject.
func New(publisher Publisher, subject string, logger partner.Logger) *Tracer {
	if subject == "" {
		subject = constants.DefaultTraceSubject
	}

	return &Tracer{
		publisher: publisher,
		subject:   subject,
		logger:    logger,
	}
}

// Connect opens a NATS connection for a tracer.
func Connect(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name(name))
	if err != nil {
		return nil, fmt.Errorf("connecting to trace server: %w", err)
	}

	return conn, nil
}

// Install adds the tracer to an interceptor chain.
func (t *Tracer) Install(chain *partner.InterceptorChain) {
	chain.AddRequestInterceptor(t.RequestInterceptor())
	chain.AddResponseInterceptor(t.ResponseInterceptor())
}

// RequestInterceptor records the start time of a call.
func (t *Tracer) RequestInterceptor() partner.RequestInterceptor {
	return func(ctx context.Context, req *partner.Request) error {
		req.SetMetadata(startKey, time.Now())

		return nil
	}
}

// ResponseInterceptor publishes the event of a completed call.
func (t *Tracer) ResponseInterceptor() partner.ResponseInterceptor {
	return func(ctx context.Context, req *partner.Request, resp *partner.Response) error {
		event := Event{
			Method:        req.Method,
			Path:          req.Path,
			StatusCode:    resp.StatusCode,
			CorrelationID: req.RequestContext.CorrelationID.String(),
			RequestID:     req.RequestContext.RequestID.String(),
			Timestamp:     time.Now().UTC(),
		}

		if start, ok := req.Metadata[startKey].(time.Time); ok {
			event.Duration = time.Since(start).String()
		}

		if resp.Error != nil {
			event.Error = resp.Error.Error()

			if category, ok := partner.CategoryOf(resp.Error); ok {
				event.Category = category.String()
			}
		}

		t.publish(event)

		return nil
	}
}

func (t *Tracer) publish(event Event) {
	data, err := json.Marshal(event)
	if err == nil {
		err = t.publisher.Publish(t.subject, data)
	}

	if err != nil && t.logger != nil {
		t.logger.Warn("failed to publish trace event", map[string]interface{}{
			"subject":    t.subject,
			"request_id": event.RequestID,
			"error":      err.Error(),
		})
	}
}
