package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/crowdfund-search/internal/adapters/http/dto"
	"github.com/jsamuelsen11/crowdfund-search/internal/domain"
	"github.com/jsamuelsen11/crowdfund-search/internal/platform/auth"
)

// Session returns middleware that turns the Authorization header into an
// auth.Session stored in the request context. Requests without the header
// proceed anonymously. A malformed header or an expired JWT is rejected with
// 401 before any handler runs; the token itself is never validated here.
//
// The outbound httpclient reads the session from context and forwards the
// bearer token to the campaign backend. Logging, installed after Session,
// names the session in request logs.
func Session(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := auth.FromAuthorizationHeader(r.Header.Get("Authorization"))
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}
			if session.Expired(now()) {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: token expired", domain.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
