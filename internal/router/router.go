package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/authcore/face-auth/internal/handler"    // import the handlers that implement business logic
	"github.com/authcore/face-auth/internal/middleware" // import middleware for session resolution and rate limiting
	"github.com/authcore/face-auth/internal/session"    // session resolver used by protected routes
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems use this endpoint to verify
	// that the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes. The login and
// register POSTs take the rate limiter so credential-stuffing and
// registration floods are damped; the rest of the group is unmetered.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/auth")
	// Informational GET pages mirroring the login/registration forms.
	g.GET("/", a.AuthPage)
	g.GET("/register", a.RegisterPage)
	// Credential-bearing POSTs, rate limited.
	g.POST("/", a.Login, limiter)
	g.POST("/register", a.Register, limiter)
	// Session resolution and teardown. Logout is a GET so a plain link
	// can end a session; it only clears client-held cookies.
	g.GET("/me", a.Me)
	g.GET("/logout", a.Logout)
}

// RegisterEmbeddings registers the face-embedding storage routes. Both
// require a live session: the vectors are per-account data and the
// pipeline callers hold a service account session.
func RegisterEmbeddings(e *echo.Echo, h *handler.EmbeddingHandler, resolver *session.Resolver) {
	g := e.Group("/embeddings")
	g.Use(middleware.RequireSession(resolver))
	g.POST("", h.Save)
	g.GET("/:user_id", h.Get)
}
