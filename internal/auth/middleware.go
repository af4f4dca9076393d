package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Middleware resolves the requestor for each request and stores it in the
// request context. Authentication failures do not reject the request; the
// caller simply proceeds as anonymous and permission-gated fields deny.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context())

			if a.IsNoOp() {
				logger.Debug().
					Str("path", r.URL.Path).
					Msg("⚠️  Authentication BYPASSED (NoOp mode)")
				next.ServeHTTP(w, r.WithContext(WithRequestor(r.Context(), a.devRequestor)))
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			requestor, err := a.Authenticate(token)
			if err != nil {
				// Expired or tampered tokens are expected traffic on a
				// public API; log at debug, not error.
				logger.Debug().
					Str("path", r.URL.Path).
					Str("error", err.Error()).
					Msg("Invalid bearer token, continuing as anonymous")
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug().
				Str("path", r.URL.Path).
				Str("sub", requestor.Sub).
				Msg("Authenticated request")

			next.ServeHTTP(w, r.WithContext(WithRequestor(r.Context(), requestor)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
