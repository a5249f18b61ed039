package auth

import (
	"errors"
	"time"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"` // never serialised
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the public view of an authenticated user, returned by login.
// It carries no credential material.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Sentinel errors for auth operations.
var (
	// ErrInvalidInput is returned when a registration request is missing
	// required fields.
	ErrInvalidInput = errors.New("auth: email and password required")

	// ErrEmailExists is returned when an account with the email already exists.
	ErrEmailExists = errors.New("auth: email already registered")

	// ErrUserNotFound is returned by lookups when no account matches.
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrInvalidCredentials is returned on any authentication failure.
	// It is intentionally uninformative: callers cannot distinguish an
	// unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
