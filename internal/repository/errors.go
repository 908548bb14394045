// Package repository contains data access logic separated from HTTP handlers.
// Sentinel errors defined here let handlers translate storage failures into
// the typed HTTP error taxonomy without inspecting driver error strings.
package repository

import "errors"

// ErrEmailExists is returned when registering with an email that already
// has an account (unique constraint on users.email).
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")
