package clock

import (
	"sync"
	"time"
)

// Clock abstracts the current time so timer-driven components can be
// exercised in tests with a controlled clock.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Mock implements Clock for tests. The zero value starts at the zero time;
// use Set or Advance to move it.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Millis returns t as epoch milliseconds, the timestamp unit shared
// documents are written with.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
