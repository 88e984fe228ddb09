// Package repository defines error types that are reused across the
// store implementations. These sentinel values allow higher layers
// such as validators and handlers to distinguish between different
// failure scenarios without inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no record. Callers
// decide what that means: the login validator collapses it into a
// generic not-authenticated signal, the registration validator
// treats it as "this value is still free".
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique key on
// email, username or uuid. It is the write-time guard behind the
// validator's pre-check: two racing registrations can both pass
// validation, but only one insert succeeds. Handlers translate this
// into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate record")
