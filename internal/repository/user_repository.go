package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/authcore/face-auth/internal/model"
)

// UserStore is the narrow contract the rest of the application has with
// the credential store. Validators and the session resolver depend on
// this interface rather than on *sql.DB so they can be exercised against
// an in-memory fake in tests.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUUID(ctx context.Context, id string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "name,username,email,phone,password_hash,uuid"

// Insert persists a validated user. The users table carries unique keys
// on email, username and uuid, so a concurrent duplicate that slipped
// past the validator's pre-check fails here with ErrDuplicate instead of
// producing a second row.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?,?,?,?,?,?)",
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.UUID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a MySQL duplicate-entry error
// (code 1062) raised by one of the unique keys.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// FindByEmail fetches a user by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

// FindByUsername fetches a user by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, "username", username)
}

// FindByUUID fetches a user by its generated identifier.
func (r *UserRepo) FindByUUID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "uuid", id)
}

func (r *UserRepo) findOne(ctx context.Context, column, value string) (*model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+column+"=? LIMIT 1",
		value).Scan(&u.Name, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.UUID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
