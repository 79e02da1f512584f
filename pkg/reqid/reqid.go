// Package reqid generates per-request IDs and propagates them through the
// request context and the X-Request-ID header. The logging middleware picks
// the ID up so every log line from a request carries the same request_id.
package reqid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// Header is the HTTP header used to propagate the request ID.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a cryptographically random 32-hex-char request ID.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// WithValue stores id in ctx.
func WithValue(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromCtx returns the request ID stored in ctx, or "".
func FromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// Middleware injects a request ID into the context and response header.
// An upstream X-Request-ID (from a gateway or proxy) is honoured so traces
// stay correlated across services.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" {
				id = New()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithValue(r.Context(), id)))
		})
	}
}
