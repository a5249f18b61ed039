package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create inserts a new user account. The ID is generated if empty.
	// Returns ErrEmailExists if the email is already registered.
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// SQLiteUserRepository implements UserRepository using SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed user repository.
func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user account.
//
// Uniqueness is enforced by the UNIQUE index on email: a constraint
// violation maps to ErrEmailExists. There is no read-before-write, so two
// concurrent registrations for the same email race at the index, not in
// application code.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = "usr-" + uuid.NewString()[:8]
	}

	now := time.Now().UTC()
	user.CreatedAt = now.Truncate(time.Second)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Email, nullString(user.Name), user.PasswordHash,
		now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email address.
func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?",
		email,
	)

	var u User
	var name sql.NullString
	var createdAt string

	err := row.Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	if name.Valid {
		u.Name = name.String
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt) //nolint:errcheck // format is controlled

	return &u, nil
}

// nullString converts an optional string to sql.NullString.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint")
}
