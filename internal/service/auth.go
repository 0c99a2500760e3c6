package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"bakeryapi/internal/config"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService issues admin session tokens. Privileged product operations are
// authorized server-side with these tokens, never from client-held state.
type AuthService interface {
	// Login checks the credential pair against the configured admin account
	// and returns a signed JWT on success.
	Login(email, password string) (string, error)
}

type authService struct {
	cfg config.AuthConfig
	now func() time.Time
}

// NewAuthService constructs an AuthService from the configured admin account.
func NewAuthService(cfg config.AuthConfig) AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

func (s *authService) Login(email, password string) (string, error) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" || s.cfg.JWTSecret == "" {
		return "", fmt.Errorf("auth is not configured")
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
