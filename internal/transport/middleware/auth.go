package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type actorResolver interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves a bearer token to the current actor. Requests without a
// token pass through anonymously; a bad token is refused with 401 and a
// rejected or suspended account with 403.
func Auth(resolver actorResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			actor, err := resolver.Authenticate(r.Context(), token)
			if err != nil {
				var authErr *domain.AuthorizationError
				switch {
				case errors.As(err, &authErr):
					writeError(w, http.StatusForbidden, authErr.Reason.String(), authErr.Message)
				case errors.Is(err, domain.ErrUnauthorized):
					writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
				default:
					logger.ErrorContext(r.Context(), "authenticate",
						slog.String("error", err.Error()),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					)
					writeError(w, http.StatusInternalServerError, "internal", "internal server error")
				}
				return
			}

			reportUser(w, actor.ID)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), actor)))
		})
	}
}

// RequireAuth refuses anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
