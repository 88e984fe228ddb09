package model

import "github.com/google/uuid"

// User represents an application user record as stored in the
// `users` table. The Password field carries the registrant's
// plaintext only between the HTTP boundary and the registration
// validator, which replaces it with a bcrypt hash before the
// record is persisted; it is never written to the database.
//
// Fields:
//
//	Name         – display name of the registrant.
//	Username     – unique login name.
//	Email        – unique email address.
//	Phone        – contact phone number.
//	Password     – plaintext password, pre-hash only.
//	PasswordHash – bcrypt hashed password (set by the validator).
//	UUID         – generated unique identifier, immutable after creation.
type User struct {
	Name         string
	Username     string
	Email        string
	Phone        string
	Password     string
	PasswordHash string
	UUID         string
}

// NewUser builds a User from registration input. When id is empty a new
// identifier is generated by concatenating a full UUID with the first four
// characters of a second, independently generated UUID (40 characters
// total). Uniqueness is not checked here; the registration validator probes
// the store before any insert and the store enforces it with a unique key.
func NewUser(name, username, email, phone, password, id string) *User {
	if id == "" {
		id = uuid.NewString() + uuid.NewString()[:4]
	}
	return &User{
		Name:     name,
		Username: username,
		Email:    email,
		Phone:    phone,
		Password: password,
		UUID:     id,
	}
}

// Serialize returns a flat field-to-value map of the user, suitable for
// logging and for comparison at the store boundary. The plaintext password
// is intentionally excluded.
func (u *User) Serialize() map[string]any {
	return map[string]any{
		"name":          u.Name,
		"username":      u.Username,
		"email":         u.Email,
		"phone":         u.Phone,
		"password_hash": u.PasswordHash,
		"uuid":          u.UUID,
	}
}
