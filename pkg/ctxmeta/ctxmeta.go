// Пакет ctxmeta: метаданные запроса, которые прокидываются через context.Context:
// request_id HTTP-запроса и session_id сессии обозревателя.
// HTTP-слой и логгер зависят от этого пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeySessionID ctxKey = "session_id"
)

// WithRequestID кладёт request_id в контекст (если пусто: ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return from(ctx, KeyRequestID)
}

// WithSessionID кладёт id сессии обозревателя.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return with(ctx, KeySessionID, sessionID)
}

// SessionIDFromContext достаёт id сессии обозревателя.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return from(ctx, KeySessionID)
}

func with(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func from(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
