package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/comingup/marketplace-api/internal/core/domain"
)

// Authenticator resolves a bearer token to its user, or nil for anonymous.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) *domain.User
}

type actorKey struct{}

// Auth resolves the Authorization header into an actor on the request
// context. It never rejects: a missing, malformed, or expired token leaves
// the request anonymous, and the authorization policy decides what an
// anonymous caller may do.
func Auth(authn Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token != "" {
				if user := authn.Authenticate(c.Request().Context(), token); user != nil {
					ctx := WithActor(c.Request().Context(), user)
					c.SetRequest(c.Request().WithContext(ctx))
				}
			}
			return next(c)
		}
	}
}

// bearerToken extracts the token from an Authorization header. A bare token
// without the Bearer prefix is accepted as-is.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// WithActor returns a context carrying the authenticated user.
func WithActor(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, actorKey{}, user)
}

// ActorFrom returns the authenticated user on the context, or nil for an
// anonymous caller.
func ActorFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(actorKey{}).(*domain.User)
	return user
}
