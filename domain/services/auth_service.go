package services

// AuthService implements the single shared-secret admin login.
type AuthService interface {
	// Login verifies the shared secret and returns a signed session token
	// on success, or ErrInvalidCredentials.
	Login(code string) (string, error)

	// Validate reports whether a session token is valid and unexpired.
	Validate(token string) bool
}
