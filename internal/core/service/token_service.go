package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweettreats/storefront/internal/core/domain"
)

var errNoSession = errors.New("token: no active session")

// TokenService issues bearer tokens for the HTTP adapter. A token names the
// storefront session it was issued for; it stops being honoured as soon as
// that session ends.
type TokenService struct {
	jwtSecret string
	tokenTTL  time.Duration
}

func NewTokenService(jwtSecret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Issue signs a token for user bound to sessionID.
func (s *TokenService) Issue(user domain.User, sessionID string) (string, error) {
	if sessionID == "" {
		return "", errNoSession
	}
	claims := jwt.MapClaims{
		"username": user.Name,
		"role":     string(user.Role),
		"sid":      sessionID,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
