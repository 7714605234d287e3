package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every value the redaction rules match.
const Redacted = "[REDACTED]"

// SensitiveHeaders holds the lowercase names of HTTP headers that carry
// credentials. The request logging middleware and the field-name rules
// below both read it.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
}

// sensitiveFields are attribute keys redacted wherever they appear, including
// inside groups and structs.
var sensitiveFields = []string{
	"token",
	"access_token",
	"refresh_token",
	"password",
	"secret",
}

var (
	// bearerPattern finds "Bearer <token>" inside any string value.
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern finds a bare compact JWT. Each segment needs ten characters
	// so dotted version strings are left alone.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
)

// newRedactAttr returns the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+4)
	opts = append(opts,
		masq.WithRedactMessage(Redacted),
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
	)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
