package services

import (
	"os"

	"github.com/NabeelAltarteer/GetEmpStatusBE/errors"
	"github.com/NabeelAltarteer/GetEmpStatusBE/services/logger"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the ops account configured through the
// environment (OPS_EMAIL, OPS_PASSWORD_HASH). It guards the cache
// invalidation endpoints; employee data itself is read-only and public
// inside the cluster.
type AuthService struct {
	logger logger.Logger
}

func NewAuthService(log logger.Logger) *AuthService {
	return &AuthService{logger: log}
}

// Login checks the credentials and issues a token on success
func (s *AuthService) Login(email, password string) (string, error) {
	opsEmail := os.Getenv("OPS_EMAIL")
	opsHash := os.Getenv("OPS_PASSWORD_HASH")
	if opsEmail == "" || opsHash == "" {
		s.logger.Error("ops credentials are not configured")
		return "", errors.NewAppError(errors.ErrCodeUnauthorized, "Login is not available", nil)
	}
	if email != opsEmail {
		s.logger.Info("login rejected for unknown account %s", email)
		return "", errors.NewAppError(errors.ErrCodeUnauthorized, "Invalid credentials", errors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(opsHash), []byte(password)); err != nil {
		s.logger.Info("login rejected for %s, wrong password", email)
		return "", errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid credentials", errors.ErrInvalidPassword)
	}
	return GenerateOpsToken(email, DefaultTokenTTL)
}
