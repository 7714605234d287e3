package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
)

// errPanic is what clients see for a recovered panic. The panic value and
// stack stay in the log.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into an RFC 9457
// 500 response and an error log carrying the stack. A response already
// under way is left alone. http.ErrAbortHandler is re-raised so the server
// still aborts the connection.
//
// Recovery runs before RequestID, so the request ID is read back from the
// response header RequestID set.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "handler panicked",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("request_id", rec.Header().Get(headerRequestID)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				if !rec.headerSent() {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
