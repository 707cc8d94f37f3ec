package chat

import (
	"sync"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
)

// UnreadCounter derives the unread badge from chat snapshots and the panel
// open/closed flag. The count is only ever non-zero while the panel is
// closed; opening clears it synchronously before any further snapshot is
// processed.
type UnreadCounter struct {
	clock clock.Clock

	mu         sync.Mutex
	selfID     string
	open       bool
	lastReadAt int64
	count      int
	onChange   func(int)
}

// NewUnreadCounter creates a counter with lastRead set to now, so history
// present at mount is never counted as unread. onChange, if non-nil, fires
// whenever the count changes.
func NewUnreadCounter(clk clock.Clock, onChange func(int)) *UnreadCounter {
	return &UnreadCounter{
		clock:      clk,
		lastReadAt: clock.Millis(clk.Now()),
		onChange:   onChange,
	}
}

// SetSelf records the current user so own messages are never counted.
func (c *UnreadCounter) SetSelf(userID string) {
	c.mu.Lock()
	c.selfID = userID
	c.mu.Unlock()
}

// HandleSnapshot recomputes the count from a display-ordered message list.
// Snapshots arriving while the panel is open are ignored.
func (c *UnreadCounter) HandleSnapshot(msgs []models.ChatMessage) {
	c.mu.Lock()
	if c.open {
		c.mu.Unlock()
		return
	}

	count := 0
	for _, m := range msgs {
		if m.UserID != c.selfID && m.CreatedAt > c.lastReadAt {
			count++
		}
	}

	changed := count != c.count
	c.count = count
	onChange := c.onChange
	c.mu.Unlock()

	if changed && onChange != nil {
		onChange(count)
	}
}

// Open marks the panel open, resetting the count and advancing lastRead.
func (c *UnreadCounter) Open() {
	c.mu.Lock()
	c.open = true
	changed := c.count != 0
	c.count = 0
	c.lastReadAt = clock.Millis(c.clock.Now())
	onChange := c.onChange
	c.mu.Unlock()

	if changed && onChange != nil {
		onChange(0)
	}
}

// Close marks the panel closed and advances lastRead so only messages that
// arrive from now on count as unread.
func (c *UnreadCounter) Close() {
	c.mu.Lock()
	c.open = false
	c.lastReadAt = clock.Millis(c.clock.Now())
	c.mu.Unlock()
}

// Count returns the current unread count.
func (c *UnreadCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
