package domain

import (
	"context"
	"time"
)

// RoleAdmin is the role carried by tokens allowed to manage events.
const RoleAdmin = "admin"

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated principal.
type TokenIssuer interface {
	Issue(subject, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AuthService authenticates the site administrator.
type AuthService interface {
	// Login returns a signed token, or ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}
