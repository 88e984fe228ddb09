package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/face-auth/internal/session"
)

// IdentityKey is the context key under which RequireSession stores the
// resolved identity. Handlers read it via c.Get(IdentityKey).
const IdentityKey = "identity"

// RequireSession returns an Echo middleware that resolves the session
// cookies into an identity and rejects the request with 401 when no
// valid session is presented. The resolver re-queries the credential
// store on every request; a session whose backing user record has been
// deleted is rejected the same way as a missing session.
func RequireSession(r *session.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := ""
			if ck, err := c.Cookie(session.CookieEmail); err == nil {
				email = ck.Value
			}
			id, err := r.Resolve(c.Request().Context(), email)
			if errors.Is(err, session.ErrNotAuthenticated) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Not Authorized"})
			}
			if err != nil {
				c.Logger().Errorf("session resolve failed: %v", err)
				return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "internal error"})
			}
			c.Set(IdentityKey, id)
			return next(c)
		}
	}
}
