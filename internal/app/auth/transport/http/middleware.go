package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/okorolev/skillswap/internal/app/auth"
	"github.com/okorolev/skillswap/internal/app/user"
	"github.com/okorolev/skillswap/internal/infrastructure/contextx"
	"github.com/okorolev/skillswap/internal/infrastructure/httpx"
	"github.com/okorolev/skillswap/internal/infrastructure/logger"
)

// HeaderUserID carries the caller's numeric id alongside the bearer
// token, as the original client sends it.
const HeaderUserID = "user-id"

type Authenticator interface {
	Authenticate(ctx context.Context, token, userIDHeader string) (user.User, error)
}

// AuthMiddleware rejects requests without a bearer token and resolves
// the caller from the token and user-id header pair.
func AuthMiddleware(svc Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if !strings.HasPrefix(authHeader, "Bearer ") || token == "" {
				err := auth.ErrMissingToken()
				logger.Error(ctx, err).
					Msg("auth.AuthMiddleware: missing or malformed Authorization header")
				httpx.ReturnError(ctx, w, err)
				return
			}

			u, err := svc.Authenticate(ctx, token, r.Header.Get(HeaderUserID))
			if err != nil {
				httpx.ReturnError(ctx, w, err)
				return
			}

			ctx = contextx.SetUserID(ctx, u.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
