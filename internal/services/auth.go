package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// adminSubject is the token subject for the site administrator.
const adminSubject = "admin"

// AdminCredentials identifies the single administrator allowed to manage events.
// PasswordHash and PasswordSalt are produced by cmd/hashpassword.
type AdminCredentials struct {
	Email        string
	PasswordHash string
	PasswordSalt string
}

type authService struct {
	admin       AdminCredentials
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	tokenExpiry time.Duration
}

// NewAuthService creates an AuthService for the configured administrator.
func NewAuthService(admin AdminCredentials, hasher domain.PasswordHasher, issuer domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	admin.Email = strings.TrimSpace(strings.ToLower(admin.Email))
	return &authService{
		admin:       admin,
		hasher:      hasher,
		issuer:      issuer,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if s.admin.Email == "" || s.admin.PasswordHash == "" {
		return "", domain.ErrInvalidCredentials
	}
	email = strings.TrimSpace(strings.ToLower(email))
	// The password is always compared so a wrong email costs the same as a wrong password.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	passwordErr := s.hasher.Compare(s.admin.PasswordHash, s.admin.PasswordSalt, password)
	if !emailOK || passwordErr != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(adminSubject, email, []string{domain.RoleAdmin}, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
