package auth

import "errors"

// Sign-in and sign-up failures map onto a closed set of reasons so callers
// can show a specific message without leaking internals. Anything
// unrecognized falls back to ErrAuthFailed.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrEmailInUse        = errors.New("email already in use")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrWeakPassword      = errors.New("weak password")
	ErrTooManyRequests   = errors.New("too many attempts")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrAuthFailed        = errors.New("authentication failed")
)

// FriendlyMessage turns an auth error into the message shown to the user.
func FriendlyMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "No account found with this email"
	case errors.Is(err, ErrWrongPassword):
		return "Incorrect password"
	case errors.Is(err, ErrEmailInUse):
		return "An account with this email already exists"
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters"
	case errors.Is(err, ErrTooManyRequests):
		return "Too many attempts. Please try again later"
	case errors.Is(err, ErrInvalidCredential):
		return "Invalid email or password"
	default:
		return "Authentication failed. Please try again"
	}
}
