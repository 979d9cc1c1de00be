package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/voice-greetings/internal/model"
	"github.com/iliyamo/voice-greetings/internal/repository"
)

// PrincipalKey is the context key under which the authenticated user is
// stored for downstream handlers.
const PrincipalKey = "user"

// UserLookup resolves a bearer token to the user it belongs to.
type UserLookup interface {
	FindByToken(ctx context.Context, token string) (model.User, error)
}

// TokenAuth returns an Echo middleware that authenticates requests by exact
// match of the presented bearer token against a stored user credential.
// Tokens are opaque and static; there is no issuance, rotation or expiry.
//
// A missing or malformed Authorization header, or a token belonging to no
// user, rejects the request with 401 before the handler runs. A lookup
// failure (store unreachable) is distinct and maps to 500. On success the
// matched user becomes the request's principal, reachable via
// c.Get(PrincipalKey).
func TokenAuth(users UserLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header is "Bearer " followed by the raw token.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			u, err := users.FindByToken(c.Request().Context(), raw)
			if errors.Is(err, repository.ErrNotFound) {
				// Unknown token is "unauthenticated", not an internal error.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token lookup failed"})
			}

			c.Set(PrincipalKey, u)
			return next(c)
		}
	}
}
