package httputil

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"
)

// CORSMiddleware creates CORS middleware that handles preflight requests
// and adds appropriate CORS headers to responses.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	originsSet := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		originsSet[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if origin is allowed
			if originsSet[origin] || originsSet["*"] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Actor-Id")
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type contextKey string

// ActorIDKey stores the acting identity for the request.
const ActorIDKey contextKey = "actor_id"

// ActorIDHeader carries the caller-supplied acting identity. The value is
// trusted as given: authenticating it is out of scope for this service.
const ActorIDHeader = "X-Actor-Id"

// ActorMiddleware extracts the acting identity from the request header and
// stores it in the context. Requests without the header proceed with no
// actor: anonymous writes are valid.
func ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actorID := r.Header.Get(ActorIDHeader); actorID != "" {
			ctx := context.WithValue(r.Context(), ActorIDKey, actorID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// ActorIDFromContext returns the acting identity, or nil when the request
// carried none.
func ActorIDFromContext(ctx context.Context) *string {
	if id, ok := ctx.Value(ActorIDKey).(string); ok {
		return &id
	}
	return nil
}

// RateLimitMiddleware applies a process-wide token bucket to a route group.
// Used on the public validate endpoint, which fans out to a remote query per
// request.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
