package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/license-activation/internal/utils" // token verification
)

// identityKey is the context key under which BearerAuth stores the verified
// identity for downstream handlers.
const identityKey = "identity"

// BearerAuth returns an Echo middleware that validates a Bearer session
// token and injects the embedded identity into the request context. The
// split between failure codes is deliberate: a missing Authorization header
// is 401 (no credentials at all), while a present token that fails
// verification for any reason is 403. Handlers behind this middleware can
// assume CurrentIdentity succeeds.
//
// The identity comes straight from the signed claims. The credential store
// is not consulted, so a token issued for an account that no longer exists
// still passes; the token is the session.
func BearerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required."})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			ident, err := utils.VerifySessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid or expired token."})
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// CurrentIdentity pulls the verified identity out of the request context.
// The second return is false when the middleware did not run.
func CurrentIdentity(c echo.Context) (utils.Identity, bool) {
	ident, ok := c.Get(identityKey).(utils.Identity)
	return ident, ok
}
