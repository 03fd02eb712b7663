package auth

import (
	"adikart/internal/core/domain/user"
	"adikart/internal/core/services/auth"
	"context"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

// ParseToken reads the session token from the Authorization header. The
// header must start with the Bearer scheme exactly; anything else is
// treated as no token at all.
func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	header := r.Header.Get("authorization")
	if !strings.HasPrefix(header, AUTH_TOKEN_PREFIX) {
		return token, false
	}
	rawToken := header[len(AUTH_TOKEN_PREFIX):]
	if rawToken == "" || len(rawToken) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(rawToken), true
}

// SetAuthTokenToContext stores the bearer token, if any, for the
// authentication decorator to resolve. Requests without one pass through
// unchanged so public endpoints on the same router keep working.

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			ctx := context.WithValue(r.Context(), auth.CONTEXT_AUTH_TOKEN_KEY, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
