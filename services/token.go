package services

import (
	"os"
	"time"

	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTokenTTL is how long an issued ops token stays valid
const DefaultTokenTTL = 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateOpsToken issues an HS256 token for the ops account
func GenerateOpsToken(email string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Could not sign token", err)
	}
	return signed, nil
}

// ParseOpsToken verifies a token and returns the ops email it was issued to
func ParseOpsToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token claims", nil)
	}
	email, ok := claims["email"].(string)
	if !ok {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Token has no email claim", nil)
	}
	return email, nil
}
