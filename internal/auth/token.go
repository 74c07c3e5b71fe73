package auth

import (
	"errors"
	"fmt"
	"time"

	"elgrace_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid    = errors.New("token is invalid")
	ErrTokenExpired    = errors.New("token is expired")
	ErrClaimsInvalid   = errors.New("claims are invalid")
	ErrNotRefreshToken = errors.New("token is not refresh token")
	ErrNotAccessToken  = errors.New("token is not access token")
)

type TokenClaims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Type   string          `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

var secret []byte

// SetSecret installs the signing key. Called once from app wiring before any
// token is issued or parsed.
func SetSecret(s string) {
	secret = []byte(s)
}

// NewAccessToken issues a signed HS256 access token for the user.
func NewAccessToken(user *models.User, duration time.Duration) (string, error) {
	return newToken(user, "access", duration)
}

// NewRefreshToken issues a signed HS256 refresh token for the user.
func NewRefreshToken(user *models.User, duration time.Duration) (string, error) {
	return newToken(user, "refresh", duration)
}

func newToken(user *models.User, tokenType string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "elgrace",
			Subject:   user.ID,
			ID:        fmt.Sprintf("%s-%s-%d", tokenType, user.ID, now.Unix()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates an access token and returns its claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	claims, err := parseAny(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != "access" {
		return nil, ErrNotAccessToken
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func ParseRefreshToken(tokenString string) (*TokenClaims, error) {
	claims, err := parseAny(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, ErrNotRefreshToken
	}
	return claims, nil
}

func parseAny(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected token signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrClaimsInvalid
	}
	return claims, nil
}
