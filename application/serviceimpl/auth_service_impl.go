package serviceimpl

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"gallery-api/domain/services"
	"gallery-api/pkg/config"
	"gallery-api/pkg/logger"
	"gallery-api/pkg/utils"
)

type AuthServiceImpl struct {
	adminSecret     string
	adminSecretHash string
	sessionSecret   string
}

func NewAuthService(adminCfg config.AdminConfig, sessionSecret string) services.AuthService {
	if adminCfg.Secret == "" && adminCfg.SecretHash == "" {
		logger.StartupWarn("auth_config", "No admin secret configured, login is disabled", nil)
	}

	return &AuthServiceImpl{
		adminSecret:     adminCfg.Secret,
		adminSecretHash: adminCfg.SecretHash,
		sessionSecret:   sessionSecret,
	}
}

func (s *AuthServiceImpl) Login(code string) (string, error) {
	if code == "" || !s.secretMatches(code) {
		logger.Auth("login_failed", "Admin login rejected", nil)
		return "", services.ErrInvalidCredentials
	}

	token, err := utils.CreateSessionToken(s.sessionSecret)
	if err != nil {
		logger.AuthError("login", "Failed to sign session token", err, nil)
		return "", err
	}

	logger.Auth("login", "Admin login succeeded", nil)
	return token, nil
}

func (s *AuthServiceImpl) Validate(token string) bool {
	return utils.ValidateSessionToken(token, s.sessionSecret) == nil
}

// secretMatches checks the submitted secret against the bcrypt hash when one
// is configured, falling back to a constant-time comparison with the plain
// secret.
func (s *AuthServiceImpl) secretMatches(code string) bool {
	if s.adminSecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.adminSecretHash), []byte(code)) == nil
	}
	if s.adminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.adminSecret), []byte(code)) == 1
}
