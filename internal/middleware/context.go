package middleware

import "context"

type ctxKey int

const (
	ctxKeyIsHTMX ctxKey = iota
	ctxKeySession
)

// WithHTMX records whether the request came from htmx and expects a fragment.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX reports whether handlers should answer with a fragment.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}
