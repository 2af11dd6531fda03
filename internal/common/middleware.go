package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "claims"

// publicRoutes skip bearer authentication. Keys are mux path templates.
var publicRoutes = map[string]bool{
	"/api/v1/health":             true,
	"/api/v1/auth/login":         true,
	"/api/v1/webhooks/evolution": true,
}

// AuthMiddleware validates the bearer token and stores the claims in the
// request context.
func AuthMiddleware(jwtManager *JWTManager, log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil && publicRoutes[tpl] {
					next.ServeHTTP(w, r)
					return
				}
			}

			token := ExtractToken(r)
			if token == "" {
				WriteError(w, log, ErrUnauthorized)
				return
			}

			claims, err := jwtManager.ValidateToken(token)
			if err != nil {
				log.Debug("rejected token", zap.Error(err))
				WriteError(w, log, ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// ExtractToken reads "Authorization: Bearer <token>" and falls back to the
// token query parameter used by socket handshakes.
func ExtractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}
