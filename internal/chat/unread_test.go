package chat

import (
	"testing"
	"time"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
)

func msgAt(userID string, createdAt int64) models.ChatMessage {
	return models.ChatMessage{UserID: userID, CreatedAt: createdAt}
}

func TestUnreadCounter_CountsForeignMessagesAfterLastRead(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := NewUnreadCounter(clk, nil)
	c.SetSelf("self")
	base := clock.Millis(testStart)

	c.HandleSnapshot([]models.ChatMessage{
		msgAt("other", base-1000), // history, before lastRead
		msgAt("other", base+1000),
		msgAt("self", base+2000), // own message never counts
		msgAt("other", base+3000),
	})

	if got := c.Count(); got != 2 {
		t.Errorf("expected 2 unread, got %d", got)
	}
}

func TestUnreadCounter_OpenResetsToZero(t *testing.T) {
	clk := clock.NewMock(testStart)
	var changes []int
	c := NewUnreadCounter(clk, func(n int) { changes = append(changes, n) })
	c.SetSelf("self")
	base := clock.Millis(testStart)

	c.HandleSnapshot([]models.ChatMessage{
		msgAt("other", base+1000),
		msgAt("other", base+2000),
	})
	if c.Count() != 2 {
		t.Fatalf("expected 2 unread, got %d", c.Count())
	}

	c.Open()
	if c.Count() != 0 {
		t.Errorf("open must reset count to 0, got %d", c.Count())
	}

	// A snapshot racing with the open action is ignored while open.
	c.HandleSnapshot([]models.ChatMessage{
		msgAt("other", base+1000),
		msgAt("other", base+2000),
		msgAt("other", base+3000),
	})
	if c.Count() != 0 {
		t.Errorf("snapshot while open must not change count, got %d", c.Count())
	}

	want := []int{2, 0}
	if len(changes) != len(want) {
		t.Fatalf("expected changes %v, got %v", want, changes)
	}
}

func TestUnreadCounter_CloseAdvancesLastRead(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := NewUnreadCounter(clk, nil)
	c.SetSelf("self")
	base := clock.Millis(testStart)

	c.Open()
	clk.Advance(5 * time.Second)
	c.Close()

	// Messages older than the close moment are already read.
	c.HandleSnapshot([]models.ChatMessage{
		msgAt("other", base+1000),
	})
	if c.Count() != 0 {
		t.Errorf("messages before close must not count, got %d", c.Count())
	}

	c.HandleSnapshot([]models.ChatMessage{
		msgAt("other", base+1000),
		msgAt("other", base+10_000),
	})
	if c.Count() != 1 {
		t.Errorf("expected 1 unread after close, got %d", c.Count())
	}
}

func TestUnreadCounter_PendingMessagesDoNotCount(t *testing.T) {
	clk := clock.NewMock(testStart)
	c := NewUnreadCounter(clk, nil)
	c.SetSelf("self")

	// A message still waiting for its store timestamp reads as 0.
	c.HandleSnapshot([]models.ChatMessage{msgAt("other", 0)})
	if c.Count() != 0 {
		t.Errorf("pending message must not count as unread, got %d", c.Count())
	}
}
