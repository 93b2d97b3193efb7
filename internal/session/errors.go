package session

import "fmt"

// AuthErrorCode categorizes authentication failures.
type AuthErrorCode string

const (
	// ErrCodeDuplicateEmail indicates a user with the same email exists.
	ErrCodeDuplicateEmail AuthErrorCode = "DUPLICATE_EMAIL"

	// ErrCodePasswordMismatch indicates the password confirmation differs.
	ErrCodePasswordMismatch AuthErrorCode = "PASSWORD_MISMATCH"

	// ErrCodeInvalidCredentials indicates no user matches email and password.
	ErrCodeInvalidCredentials AuthErrorCode = "INVALID_CREDENTIALS"
)

// AuthError reports a rejected registration or login.
type AuthError struct {
	Code  AuthErrorCode
	Email string
}

// Sentinels for errors.Is. They match any *AuthError with the same code.
var (
	ErrDuplicateEmail     = &AuthError{Code: ErrCodeDuplicateEmail}
	ErrPasswordMismatch   = &AuthError{Code: ErrCodePasswordMismatch}
	ErrInvalidCredentials = &AuthError{Code: ErrCodeInvalidCredentials}
)

func (e *AuthError) Error() string {
	switch e.Code {
	case ErrCodeDuplicateEmail:
		if e.Email != "" {
			return fmt.Sprintf("%s: user with email %q already exists", e.Code, e.Email)
		}
		return fmt.Sprintf("%s: user already exists", e.Code)
	case ErrCodePasswordMismatch:
		return fmt.Sprintf("%s: passwords do not match", e.Code)
	case ErrCodeInvalidCredentials:
		return fmt.Sprintf("%s: invalid email or password", e.Code)
	default:
		return string(e.Code)
	}
}

// Is matches on Code.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == e.Code
}
