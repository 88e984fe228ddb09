package handler

import (
	"context"       // context with timeout bounds every store call
	"encoding/json" // json.Number carries the numeric phone field
	"errors"        // sentinel error matching
	"net/http"      // HTTP status codes and primitives
	"strings"       // input normalization
	"time"          // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/authcore/face-auth/internal/model"      // user entity
	"github.com/authcore/face-auth/internal/queue"      // domain event payloads
	"github.com/authcore/face-auth/internal/repository" // store sentinel errors
	"github.com/authcore/face-auth/internal/session"    // session issue/resolve
	"github.com/authcore/face-auth/internal/validation" // register/login pipelines
)

// EventPublisher pushes domain events to the broker. Publishing is best
// effort: a broker outage must never fail a registration.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Registration *validation.RegisterValidator
	Logins       *validation.LoginValidator
	Issuer       session.Issuer
	Resolver     *session.Resolver
	Events       EventPublisher // optional; nil disables event publishing
}

func NewAuthHandler(reg *validation.RegisterValidator, login *validation.LoginValidator, res *session.Resolver, events EventPublisher) *AuthHandler {
	return &AuthHandler{Registration: reg, Logins: login, Resolver: res, Events: events}
}

// ----- DTOs -----

type registerReq struct {
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    json.Number `json:"phone"`
	Password string      `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPage answers the login GET route.
func (h *AuthHandler) AuthPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Authentication Page"})
}

// RegisterPage answers the registration GET route.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Registration Page"})
}

// Register validates and persists a new user. Validation failures come
// back as a 401 with the accumulated message; a write-time duplicate
// (two registrations racing past the pre-check) is a distinct 409 so
// the caller knows the request was well-formed but lost the race.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u := model.NewUser(req.Name, req.Username, req.Email, req.Phone.String(), req.Password, "")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, msg, err := h.Registration.Register(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"status": false, "message": "user already exists"})
		}
		c.Logger().Errorf("register failed for %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "registration failed"})
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": msg})
	}

	if h.Events != nil {
		ev := queue.UserRegisteredEvent{
			UUID:         u.UUID,
			Username:     u.Username,
			Email:        u.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishUserRegistered(ctx, ev); err != nil {
			c.Logger().Warnf("user.registered publish failed for %s: %v", u.UUID, err)
		}
	}

	c.Response().Header().Set("uuid", u.UUID)
	return c.JSON(http.StatusOK, echo.Map{"status": true, "message": msg})
}

// Login authenticates an email/password pair and issues the session
// cookies. Unknown email and wrong password produce byte-identical
// responses; nothing distinguishes the two causes to the client.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": false, "message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Logins.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, validation.ErrNotAuthenticated) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Incorrect Username and password"})
		}
		c.Logger().Errorf("login failed for %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "login failed"})
	}

	_, cookies, err := h.Issuer.Issue(u.Email)
	if err != nil {
		c.Logger().Errorf("token issue failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "login failed"})
	}
	for _, ck := range cookies {
		c.SetCookie(ck)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": true, "user_id": u.UUID, "message": "Login Successful"})
}

// Me resolves the session cookies back to an identity. No cookie means
// an anonymous caller and a null user; a cookie whose backing record
// has vanished is an expired session, not a fault.
func (h *AuthHandler) Me(c echo.Context) error {
	email := ""
	if ck, err := c.Cookie(session.CookieEmail); err == nil {
		email = ck.Value
	}
	if email == "" {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Resolver.Resolve(ctx, email)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": false, "message": "Not Authorized"})
	}
	if err != nil {
		c.Logger().Errorf("session resolve failed for %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": false, "message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": id})
}

// Logout expires the token cookie on the client. There is no
// server-side revocation list, so this is purely a client-state clear.
func (h *AuthHandler) Logout(c echo.Context) error {
	for _, ck := range h.Issuer.Clear() {
		c.SetCookie(ck)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": true, "message": "You have been logged out"})
}
