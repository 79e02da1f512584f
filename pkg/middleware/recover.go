package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/cropconnect/api/pkg/logger"
	"github.com/cropconnect/api/pkg/response"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and converts it to a 500 envelope so one bad request never crashes the
// server. Add it as the innermost middleware so it wraps all handlers.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithCtx(r.Context()).Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
