package auth

import (
	"errors"
	"fmt"
	"testing"
)

func TestFriendlyMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"user not found", ErrUserNotFound, "No account found with this email"},
		{"wrong password", ErrWrongPassword, "Incorrect password"},
		{"email in use", ErrEmailInUse, "An account with this email already exists"},
		{"invalid email", ErrInvalidEmail, "Invalid email address"},
		{"weak password", ErrWeakPassword, "Password must be at least 6 characters"},
		{"rate limited", ErrTooManyRequests, "Too many attempts. Please try again later"},
		{"invalid credential", ErrInvalidCredential, "Invalid email or password"},
		{"unknown error falls back", errors.New("network blew up"), "Authentication failed. Please try again"},
		{"wrapped error still maps", fmt.Errorf("login: %w", ErrWrongPassword), "Incorrect password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FriendlyMessage(tt.err); got != tt.want {
				t.Errorf("FriendlyMessage(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
