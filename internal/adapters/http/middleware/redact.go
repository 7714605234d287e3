package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/crowdfund-search/internal/platform/logging"
)

// RedactHeaders returns h as log attributes sorted by header name. Headers
// listed in logging.SensitiveHeaders are logged as logging.Redacted, and
// repeated values are joined with a comma.
func RedactHeaders(h http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := logging.Redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(h[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
