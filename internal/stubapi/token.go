package stubapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medibill/internal/domain"
)

// Claims is the JWT payload the stub backend issues.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// TokenService mints and validates HS256 bearer tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewTokenService creates a TokenService. expiry below one second falls
// back to one hour.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry < time.Second {
		expiry = time.Hour
	}
	return &TokenService{secret: []byte(secret), expiry: expiry, issuer: "medibill-stub"}
}

// Mint signs a token for the given user.
func (t *TokenService) Mint(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   fmt.Sprintf("%d", u.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
		UserID:   u.UserID,
		Username: u.Username,
		Role:     u.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a token, returning its claims.
func (t *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
