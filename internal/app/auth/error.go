package auth

import (
	"github.com/okorolev/skillswap/internal/infrastructure/apperr"
)

const (
	CodeInvalidCredentials apperr.Code = "auth/invalid_credentials"
	CodeMissingToken       apperr.Code = "auth/missing_token"
	CodeInvalidToken       apperr.Code = "auth/invalid_token"
)

// ErrInvalidCredentials is returned for every login failure. Unknown
// email and wrong password are deliberately not distinguished.
func ErrInvalidCredentials() error {
	return apperr.New("Invalid credentials", CodeInvalidCredentials, apperr.ClassUnauthorized, apperr.LogLevelWarn)
}

func ErrMissingToken() error {
	return apperr.New("Access token required", CodeMissingToken, apperr.ClassUnauthorized, apperr.LogLevelWarn)
}

func ErrInvalidToken() error {
	return apperr.New("Invalid token", CodeInvalidToken, apperr.ClassForbidden, apperr.LogLevelWarn)
}
