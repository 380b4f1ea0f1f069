package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's id under [utils.UserIDCtxKey] and the role claim
// under [utils.RoleCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]),
//   - the header carries no token value ([ErrEmptyToken]),
//   - the token has expired ([service.ErrTokenExpired]),
//   - the token is otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString := utils.TrimBearerPrefix(authHeader)
		if tokenString == "" {
			log.Err(ErrEmptyToken).Send()
			http.Error(w, ErrEmptyToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				log.Err(err).Msg("token expired")
				http.Error(w, service.ErrTokenExpired.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during parsing token")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the identity claims in the context so that downstream
		// handlers can use them without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.RoleCtxKey, token.GetRole())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
