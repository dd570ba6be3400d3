package grader

import "context"

type contextKey string

const requestIDKey contextKey = "grader_request_id"

// WithRequestID attaches a request id to the context. The HTTP grader sends
// it as X-Request-ID and the logging decorator records it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom extracts the request id from the context.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
