// Package session issues and resolves client-held sessions. State lives
// entirely on the client as two HttpOnly cookies: an opaque access token
// and the account email the resolver re-queries on every request. There
// is no server-side session table, so logout clears the client copy
// only; a token captured before logout stays usable until its cookie
// lifetime ends. That trade-off is inherited behavior, kept on purpose.
package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/authcore/face-auth/internal/repository"
	"github.com/authcore/face-auth/internal/utils"
)

// Cookie names making up the client-held session state.
const (
	CookieToken = "access_token"
	CookieEmail = "email"
)

// ErrNotAuthenticated is returned by Resolve when no session state is
// present or the backing user record no longer exists. Both cases are
// anonymous to the caller; neither is a fault.
var ErrNotAuthenticated = errors.New("not authenticated")

// Identity is the resolved view of a session: just enough to know who
// is calling.
type Identity struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// Issuer binds a fresh token and the account email into cookies on
// successful login.
type Issuer struct{}

// Issue generates an opaque session token and returns it together with
// the cookie pair carrying the session state.
func (Issuer) Issue(email string) (string, []*http.Cookie, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return "", nil, err
	}
	cookies := []*http.Cookie{
		{Name: CookieToken, Value: token, Path: "/", HttpOnly: true},
		{Name: CookieEmail, Value: email, Path: "/", HttpOnly: true},
	}
	return token, cookies, nil
}

// Clear returns a cookie that expires the token entry on the client.
// The email cookie is left alone: the resolver works off the email, so
// a client that logs out and calls /auth/me again still resolves until
// its email cookie ages out. Nothing happens server-side either; there
// is no revocation list to update.
func (Issuer) Clear() []*http.Cookie {
	return []*http.Cookie{
		{Name: CookieToken, Value: "", Path: "/", HttpOnly: true, MaxAge: -1},
	}
}

// Resolver re-derives an identity from client-held state by querying
// the credential store.
type Resolver struct {
	store repository.UserStore
}

func NewResolver(store repository.UserStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve maps the email carried in the session cookies back to a user.
// An empty email means no session was presented. A store miss — the
// record was deleted after the session was issued — is reported as
// ErrNotAuthenticated rather than dereferencing a missing record.
func (r *Resolver) Resolve(ctx context.Context, email string) (*Identity, error) {
	if email == "" {
		return nil, ErrNotAuthenticated
	}
	u, err := r.store.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	return &Identity{Username: u.Username, UserID: u.UUID}, nil
}
