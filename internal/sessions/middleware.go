package sessions

import (
	"context"
	"net/http"
	"strings"
)

type contextKey struct{}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(contextKey{}).(*Session)
	return session
}

// Middleware attaches the caller's session to the request context when the
// Authorization header carries a known token. It never rejects a request.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
		session, err := r.Lookup(token)
		if err == nil && session != nil {
			ctx := context.WithValue(req.Context(), contextKey{}, session)
			req = req.WithContext(ctx)
		}
		next.ServeHTTP(w, req)
	})
}
