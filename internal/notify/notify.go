package notify

import (
	"errors"
	"sync"
)

// ErrPermissionDenied means the OS notification permission was refused.
// Callers skip the notification silently; the sound cue still plays.
var ErrPermissionDenied = errors.New("notification permission denied")

// Notifier is the notification capability boundary: a short audio cue and
// an OS-level notification, both best-effort.
type Notifier interface {
	PlaySound()
	Show(title, body string) error
}

// WindowState reports whether the UI surface currently has focus and is
// visible. The chat stream uses it to decide when an OS notification is
// warranted on top of the sound cue.
type WindowState interface {
	Focused() bool
	Visible() bool
}

// UIState is a WindowState fed by the connected UI over the event channel.
// A daemon with no UI attached reports unfocused and hidden.
type UIState struct {
	mu      sync.RWMutex
	focused bool
	visible bool
}

func NewUIState() *UIState {
	return &UIState{}
}

func (s *UIState) Set(focused, visible bool) {
	s.mu.Lock()
	s.focused = focused
	s.visible = visible
	s.mu.Unlock()
}

func (s *UIState) Focused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}

func (s *UIState) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}
