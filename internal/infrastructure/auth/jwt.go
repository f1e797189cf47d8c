package auth

import (
	"errors"
	"os"
	"time"

	"oficina_ibs/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 480 * time.Minute

var ErrInvalidToken = errors.New("invalid or expired token")

// JWTTokenService issues and verifies HS256 session tokens for the admin API.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

// NewJWTTokenService reads the signing secret from JWT_SECRET. The fallback
// secret exists so local compose setups work out of the box; production
// deployments must override it.
func NewJWTTokenService() *JWTTokenService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-in-production"
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
}

func (s *JWTTokenService) Issue(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify returns the subject (username) carried by a valid token.
func (s *JWTTokenService) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
