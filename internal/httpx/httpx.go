// Package httpx writes the JSON responses of the /api routes.
package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"terrazaeden.com/web/internal/observability"
)

// Error represents the JSON error envelope.
type Error struct {
	Code      string
	Message   string
	Status    int
	RequestID string
}

// NewError constructs an Error. A zero status means 500.
func NewError(code, message string, status int) Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Error{
		Code:    observability.Sanitize(code, 80),
		Message: observability.Sanitize(message, 512),
		Status:  status,
	}
}

// NotFound is the envelope for lookup misses.
func NotFound(message string) Error {
	return NewError("not_found", message, http.StatusNotFound)
}

// BadRequest is the envelope for invalid parameters.
func BadRequest(message string) Error {
	return NewError("bad_request", message, http.StatusBadRequest)
}

// WriteError writes err as JSON, filling request and trace ids from ctx.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	requestID := err.RequestID
	if requestID == "" {
		requestID = observability.Sanitize(middleware.GetReqID(ctx), 80)
	}
	payload := map[string]any{
		"error":   err.Code,
		"message": err.Message,
		"status":  status,
	}
	if requestID != "" {
		payload["request_id"] = requestID
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		payload["trace_id"] = sc.TraceID().String()
	}
	WriteJSON(ctx, w, status, payload)
}

// WriteJSON encodes v with the given status.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		observability.FromContext(ctx).Warn("encode json response failed")
	}
}
