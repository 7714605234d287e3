package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
)

// Logging returns middleware that writes one record per completed request.
// The request logger carries the request and correlation IDs and, when
// Session ran first, the caller's session. It is stored with
// logging.WithLogger for handlers and services.
//
// Completion is logged at error for 5xx, warn for 4xx and info otherwise.
// At debug level the arriving request is logged too, with credential headers
// redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			attrs := []any{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			}
			if session, ok := auth.FromContext(ctx); ok {
				attrs = append(attrs, slog.Any("session", session))
			}
			reqLogger := logger.With(attrs...)
			ctx = logging.WithLogger(ctx, reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("headers", slog.GroupValue(RedactHeaders(r.Header)...)),
				)
			}

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.Status()
			completed := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if r.URL.RawQuery != "" {
				completed = append(completed, slog.String("query", r.URL.RawQuery))
			}
			reqLogger.LogAttrs(ctx, completionLevel(status), "request completed", completed...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
