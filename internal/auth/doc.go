// Package auth implements the user directory: account registration and
// credential verification.
//
// Passwords are hashed with Argon2id and stored in PHC string format; the
// plaintext never touches the database and the hash is never serialised in
// responses. Email uniqueness is enforced by the store's UNIQUE index, so
// concurrent registrations for the same address cannot both succeed.
//
// Authentication failures are deliberately uniform: an unknown email and a
// wrong password both produce ErrInvalidCredentials, so the API cannot be
// used to enumerate accounts.
package auth
