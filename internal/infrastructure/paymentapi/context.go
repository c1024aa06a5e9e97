package paymentapi

import "context"

type ctxKey string

const (
	bearerTokenKey    ctxKey = "bearer_token"
	requestIDKey      ctxKey = "request_id"
	idempotencyKeyKey ctxKey = "idempotency_key"
)

// WithBearerToken forwards the caller's access token to the payments API
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// WithRequestID propagates the request id to the payments API
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithIdempotencyKey attaches the key sent with a cash payment submission
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyKey, key)
}

func stringFromContext(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// BearerTokenFromContext returns the token set by WithBearerToken
func BearerTokenFromContext(ctx context.Context) string {
	return stringFromContext(ctx, bearerTokenKey)
}

// RequestIDFromContext returns the id set by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, requestIDKey)
}

// IdempotencyKeyFromContext returns the key set by WithIdempotencyKey
func IdempotencyKeyFromContext(ctx context.Context) string {
	return stringFromContext(ctx, idempotencyKeyKey)
}
