// Package validation implements the registration and login pipelines:
// field and format checks, uniqueness probes against the credential
// store, password hashing on the way in and verification on the way
// back. Both validators are pure with respect to the store except for
// the single insert RegisterValidator performs on success.
package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/authcore/face-auth/internal/model"
	"github.com/authcore/face-auth/internal/repository"
	"github.com/authcore/face-auth/internal/utils"
)

// emailPattern accepts one or more alphanumeric segments optionally
// separated by '.', '_' or '-', an '@', a domain label and at least one
// dot-prefixed TLD of two or more letters. Anchored: the whole input
// must match.
var emailPattern = regexp.MustCompile(`^([A-Za-z0-9]+[._-])*[A-Za-z0-9]+@[A-Za-z0-9-]+(\.[A-Za-z]{2,})+$`)

// Password length bounds, inclusive.
const (
	MinPasswordLen = 8
	MaxPasswordLen = 16
)

// IsEmailValid reports whether the address matches the accepted format.
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// RegisterValidator checks a registration request against the format
// rules and the credential store, and persists the record once it
// passes. The store's own unique keys back the uniqueness pre-check,
// so a concurrent duplicate surfaces as repository.ErrDuplicate from
// Register rather than as a second row.
type RegisterValidator struct {
	store repository.UserStore
	cost  int // bcrypt cost
}

func NewRegisterValidator(store repository.UserStore, bcryptCost int) *RegisterValidator {
	return &RegisterValidator{store: store, cost: bcryptCost}
}

// Validate runs every check and accumulates the failure messages into
// one string; ok is true iff the message is empty. It never writes to
// the store. A non-nil err means a store probe failed and the outcome
// is unknown.
func (v *RegisterValidator) Validate(ctx context.Context, u *model.User) (ok bool, msg string, err error) {
	if u.Name == "" {
		msg += "Name is required. "
	}
	if u.Username == "" {
		msg += "Username is required. "
	}
	if u.Email == "" {
		msg += "Email is required. "
	}
	if u.Phone == "" {
		msg += "Phone Number is required. "
	}
	if u.Password == "" {
		msg += "Password is required. "
	}
	if !IsEmailValid(u.Email) {
		msg += "Email is not valid. "
	}
	if len(u.Password) < MinPasswordLen || len(u.Password) > MaxPasswordLen {
		msg += fmt.Sprintf("Length of the password should be between %d and %d. ", MinPasswordLen, MaxPasswordLen)
	}
	taken, err := v.detailsExist(ctx, u)
	if err != nil {
		return false, "", err
	}
	if taken {
		msg += "User already exists. "
	}
	return msg == "", msg, nil
}

// detailsExist probes username, email and uuid independently; any hit
// means the registration collides with an existing record.
func (v *RegisterValidator) detailsExist(ctx context.Context, u *model.User) (bool, error) {
	if _, err := v.store.FindByUsername(ctx, u.Username); !errors.Is(err, repository.ErrNotFound) {
		return err == nil, err
	}
	if _, err := v.store.FindByEmail(ctx, u.Email); !errors.Is(err, repository.ErrNotFound) {
		return err == nil, err
	}
	if _, err := v.store.FindByUUID(ctx, u.UUID); !errors.Is(err, repository.ErrNotFound) {
		return err == nil, err
	}
	return false, nil
}

// Register validates, hashes the password and inserts the record.
// Validation runs once and the result is reused for both the branch and
// the returned message. On a validation failure nothing is hashed or
// inserted. repository.ErrDuplicate from the insert is returned as err
// so callers can surface a write-time conflict distinctly from a
// validation message.
func (v *RegisterValidator) Register(ctx context.Context, u *model.User) (ok bool, msg string, err error) {
	ok, msg, err = v.Validate(ctx, u)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, msg, nil
	}
	hash, err := utils.HashPassword(u.Password, v.cost)
	if err != nil {
		return false, "", err
	}
	u.PasswordHash = hash
	u.Password = ""
	if err := v.store.Insert(ctx, u); err != nil {
		return false, "", err
	}
	return true, "User registered successfully", nil
}
