package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies session tokens. The gateway trusts
// Verify's result without re-deriving identity anywhere else.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Generate creates a signed JWT for a specific user.
func (s *TokenService) Generate(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "elective-hub",
		},
	}

	// HS256 (HMAC with SHA256), signed with the server's secret key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates the signature and expiration of a JWT
// string. Any failure maps to ErrUnauthorized; callers close the
// connection without distinguishing further.
func (s *TokenService) Verify(tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, apperrors.ErrUnauthorized
	}
	return domain.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}
