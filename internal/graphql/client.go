// Package graphql is a minimal client for the promotions GraphQL endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"terrazaeden.com/web/internal/observability"
)

const (
	// DefaultEndpoint is used when no endpoint is configured.
	DefaultEndpoint = "http://localhost:8000/graphql"

	// CorrelationHeader carries a per-call id that is also logged.
	CorrelationHeader = "X-Correlation-ID"

	defaultTimeout = 8 * time.Second
)

var tracer = otel.Tracer("terrazaeden.com/web/internal/graphql")

// ErrNoEndpoint is returned when the client has no endpoint.
var ErrNoEndpoint = errors.New("graphql: endpoint not configured")

// Error is one entry of a GraphQL errors array.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError reports a non-empty errors array. It is returned regardless of
// the HTTP status.
type ResponseError struct {
	Status int
	Errors []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, ", ")
}

// StatusError reports a non-2xx response without GraphQL errors.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("graphql: http status %d", e.Status)
	}
	return fmt.Sprintf("graphql: http status %d: %s", e.Status, e.Body)
}

// Client posts queries to a single endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	headers  map[string]string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-call timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		key = strings.TrimSpace(key)
		if key != "" {
			c.headers[key] = value
		}
	}
}

// NewClient constructs a client for endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: defaultTimeout},
		headers:  map[string]string{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Endpoint returns the configured endpoint.
func (c *Client) Endpoint() string {
	if c == nil {
		return ""
	}
	return c.endpoint
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Do sends query with variables and decodes the data member into out. out may
// be nil when the caller does not need the data.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) (err error) {
	if c == nil || c.endpoint == "" {
		return ErrNoEndpoint
	}

	correlationID := ulid.Make().String()
	ctx, span := tracer.Start(ctx, "graphql.Do", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("graphql.operation", operationName(query)),
		attribute.String("server.address", c.endpoint),
		attribute.String("correlation.id", correlationID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := observability.FromContext(ctx).With(
		zap.String("correlationId", correlationID),
		zap.String("operation", operationName(query)),
	)

	payload, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("graphql: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("graphql: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(CorrelationHeader, correlationID)
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		logger.Warn("graphql request failed", zap.Error(err))
		return fmt.Errorf("graphql: post: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("graphql: read response: %w", err)
	}
	logger.Debug("graphql response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	var env response
	decodeErr := json.Unmarshal(body, &env)
	if decodeErr == nil && len(env.Errors) > 0 {
		return &ResponseError{Status: resp.StatusCode, Errors: env.Errors}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.StatusCode, Body: truncate(string(body), 256)}
	}
	if decodeErr != nil {
		return fmt.Errorf("graphql: decode response: %w", decodeErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("graphql: decode data: %w", err)
	}
	return nil
}

func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) >= 2 && (fields[0] == "mutation" || fields[0] == "query") {
		name := fields[1]
		if i := strings.IndexAny(name, "({"); i >= 0 {
			name = name[:i]
		}
		if name != "" {
			return name
		}
	}
	return "anonymous"
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
