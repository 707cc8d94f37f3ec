package liveconfig

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/acllc88/bugleboy-radio/internal/clock"
)

// SessionTTL bounds an admin session: 2 hours after login the session is
// expired regardless of activity.
const SessionTTL = 2 * time.Hour

var ErrBadCredentials = errors.New("invalid admin credentials")

// AdminSessions issues and validates client-local, time-boxed admin
// sessions. An admin session bypasses the maintenance gate.
type AdminSessions struct {
	username string
	password string
	clock    clock.Clock

	mu       sync.Mutex
	sessions map[string]time.Time // token -> login time
}

func NewAdminSessions(username, password string, clk clock.Clock) *AdminSessions {
	return &AdminSessions{
		username: username,
		password: password,
		clock:    clk,
		sessions: make(map[string]time.Time),
	}
}

// Login checks the operator credentials and issues a session token. Admin
// access is disabled entirely when no password is configured.
func (a *AdminSessions) Login(username, password string) (string, error) {
	if a.password == "" {
		return "", ErrBadCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	if !userOK || !passOK {
		return "", ErrBadCredentials
	}

	token := uuid.New().String()
	a.mu.Lock()
	a.sessions[token] = a.clock.Now()
	a.mu.Unlock()
	return token, nil
}

// Valid reports whether token belongs to a live session. Expired sessions
// are dropped on the way out.
func (a *AdminSessions) Valid(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	loginAt, ok := a.sessions[token]
	if !ok {
		return false
	}
	if a.clock.Now().Sub(loginAt) >= SessionTTL {
		delete(a.sessions, token)
		return false
	}
	return true
}

// Logout revokes a session.
func (a *AdminSessions) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}
