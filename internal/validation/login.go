package validation

import (
	"context"
	"errors"

	"github.com/authcore/face-auth/internal/model"
	"github.com/authcore/face-auth/internal/repository"
	"github.com/authcore/face-auth/internal/utils"
)

// ErrNotAuthenticated is the single failure signal for login. A missing
// field, a malformed email, an unknown address and a wrong password all
// collapse into it so the response shape never reveals which one it was.
var ErrNotAuthenticated = errors.New("not authenticated")

// LoginValidator authenticates email/password pairs against the
// credential store.
type LoginValidator struct {
	store repository.UserStore
}

func NewLoginValidator(store repository.UserStore) *LoginValidator {
	return &LoginValidator{store: store}
}

// Authenticate returns the stored user record for a correct
// email/password pair. Presence and format are checked before the store
// is touched; a malformed request never reaches it. Any failure other
// than a broken store returns ErrNotAuthenticated.
func (v *LoginValidator) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" || !IsEmailValid(email) {
		return nil, ErrNotAuthenticated
	}
	u, err := v.store.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, ErrNotAuthenticated
	}
	return u, nil
}
