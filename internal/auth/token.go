package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"skyward/aerodrome/internal/constants"
)

// MintToken builds and signs an HS256 JWT for a user. Standard claims:
// subject (sub), role, expiration (exp) and issued at (iat).
func MintToken(secret, userID string, role constants.UserRole, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role.String(),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseToken validates an HS256 JWT and returns the claims the request
// pipeline works with. Any parse or validation failure comes back as an
// error; the middleware maps it to 401.
func ParseToken(secret, tokenString string) (*JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	role, _ := mapClaims["role"].(string)

	return &JWTClaims{
		UserUUID:  sub,
		RoleValue: constants.UserRole(role),
	}, nil
}
