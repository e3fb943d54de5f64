package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenTTL keeps tokens short-lived; clients re-login when one expires.
const accessTokenTTL = 15 * time.Minute

// DevSecret is the signing fallback for local development. Deployed
// environments must configure a real secret; app startup enforces that.
const DevSecret = "fitcircle-dev-secret"

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	AdminID int    `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens with a fixed secret, bound
// once from config at startup.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// GenerateAccessToken issues a signed, expiring JWT for an admin.
func (tm *TokenManager) GenerateAccessToken(adminID int, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ValidateAccessToken parses and verifies a token string and returns its claims.
func (tm *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return tm.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
