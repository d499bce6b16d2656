package auth

import (
	"github.com/antibyte/retrobasic/pkg/configuration"
	"github.com/antibyte/retrobasic/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Enabled reports whether the server requires an operator password.
func Enabled() bool {
	return configuration.GetBool("Server", "enable_auth", false)
}

// CheckPassword compares the given password against the configured bcrypt
// hash. With auth disabled every password is accepted.
func CheckPassword(password string) bool {
	if !Enabled() {
		return true
	}
	hash := configuration.GetString("Server", "password_hash", "")
	if hash == "" {
		logger.AuthWarn("enable_auth is set but password_hash is empty - rejecting all logins")
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return false
	}
	return true
}

// HashPassword produces a bcrypt hash suitable for the password_hash
// configuration key.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
