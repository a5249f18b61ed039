package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logger defines the logging interface used by the Directory.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Directory validates, persists, and authenticates user credentials.
//
// It is stateless between calls and safe for concurrent use.
type Directory struct {
	repo   UserRepository
	logger Logger
}

// NewDirectory creates a user directory backed by the given repository.
func NewDirectory(repo UserRepository) *Directory {
	return &Directory{
		repo:   repo,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the directory.
func (d *Directory) SetLogger(logger Logger) {
	d.logger = logger
}

// Register creates a new account.
//
// Returns ErrInvalidInput when email or password is missing, and
// ErrEmailExists when the address is already registered. The password is
// hashed before it reaches the store; the stored record never contains
// the plaintext.
func (d *Directory) Register(ctx context.Context, email, password, name string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	if err := d.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	d.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies the credentials and returns the account's public
// identity.
//
// Any failure — unknown email, wrong password, or a corrupt stored hash —
// surfaces as ErrInvalidCredentials so responses cannot be used to probe
// which addresses have accounts.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	user, err := d.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		d.logger.Warn("stored credential could not be verified", "user_id", user.ID, "error", err)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		Email: user.Email,
		Name:  user.Name,
	}, nil
}
