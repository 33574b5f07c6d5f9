package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session")
	ErrExpiredSession = errors.New("session has expired")
	ErrMissingSession = errors.New("missing session")
)

// SessionTTL is how long an admin session cookie stays valid.
const SessionTTL = 30 * 24 * time.Hour

type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// CreateSessionToken issues a signed admin session token valid for SessionTTL.
func CreateSessionToken(secret string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken parses and verifies an admin session token.
func ValidateSessionToken(tokenString, secret string) error {
	if tokenString == "" {
		return ErrMissingSession
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredSession
		}
		return ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Role != "admin" {
		return ErrInvalidSession
	}

	return nil
}

// IsAdmin reports whether the auth middleware marked this request as an
// authenticated admin session.
func IsAdmin(c *fiber.Ctx) bool {
	v, ok := c.Locals("is_admin").(bool)
	return ok && v
}
