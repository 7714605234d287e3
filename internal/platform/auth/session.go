// Package auth holds the caller's session: the bearer token presented to the
// campaign backend plus whatever claims can be read from it. A session is an
// explicit value passed through context.Context rather than process-wide
// state, so concurrent requests never observe each other's credentials.
//
// The service does not verify token signatures; the backend does. Claims are
// read only to reject tokens that have already expired and to label logs.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
)

const bearerPrefix = "bearer "

// Session is an immutable caller identity. The zero value and nil are both
// anonymous sessions.
type Session struct {
	token  string
	claims *jwt.RegisteredClaims
}

// Anonymous returns a session that carries no credentials.
func Anonymous() *Session {
	return &Session{}
}

// NewSession builds a session from a raw token. Tokens shaped like a JWT must
// parse; their claims become available through Subject and ExpiresAt. Any
// other non-empty token is accepted as opaque. An empty token yields an
// anonymous session.
func NewSession(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Anonymous(), nil
	}
	if strings.Count(token, ".") != 2 {
		return &Session{token: token}, nil
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: malformed token: %w", domain.ErrUnauthorized, err)
	}
	return &Session{token: token, claims: claims}, nil
}

// FromAuthorizationHeader builds a session from an HTTP Authorization header
// value. An empty header is anonymous; anything other than a bearer
// credential is rejected.
func FromAuthorizationHeader(header string) (*Session, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Anonymous(), nil
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, fmt.Errorf("%w: unsupported authorization scheme", domain.ErrUnauthorized)
	}
	return NewSession(header[len(bearerPrefix):])
}

// Token returns the raw bearer token, or "" for anonymous sessions.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	return s.token
}

// IsAnonymous reports whether the session carries no token.
func (s *Session) IsAnonymous() bool {
	return s.Token() == ""
}

// Subject returns the token's sub claim, or "" when unknown.
func (s *Session) Subject() string {
	if s == nil || s.claims == nil {
		return ""
	}
	return s.claims.Subject
}

// ExpiresAt returns the token's exp claim. ok is false for opaque tokens and
// tokens without an expiry.
func (s *Session) ExpiresAt() (t time.Time, ok bool) {
	if s == nil || s.claims == nil || s.claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return s.claims.ExpiresAt.Time, true
}

// Expired reports whether the token's expiry is at or before now.
func (s *Session) Expired(now time.Time) bool {
	exp, ok := s.ExpiresAt()
	return ok && !now.Before(exp)
}

// AuthorizationHeader returns the header value to send downstream, or "" for
// anonymous sessions.
func (s *Session) AuthorizationHeader() string {
	if s.IsAnonymous() {
		return ""
	}
	return "Bearer " + s.token
}

// LogValue implements slog.LogValuer. The token itself is never logged.
func (s *Session) LogValue() slog.Value {
	if s.IsAnonymous() {
		return slog.GroupValue(slog.Bool("anonymous", true))
	}
	attrs := []slog.Attr{slog.Bool("anonymous", false)}
	if sub := s.Subject(); sub != "" {
		attrs = append(attrs, slog.String("subject", sub))
	}
	return slog.GroupValue(attrs...)
}

type sessionKey struct{}

// WithSession returns a new context carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored in ctx. ok is false when none was
// attached.
func FromContext(ctx context.Context) (s *Session, ok bool) {
	s, ok = ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
