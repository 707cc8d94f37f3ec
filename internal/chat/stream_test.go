package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/notify"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

var testStart = time.UnixMilli(1_700_000_000_000)

type recordingNotifier struct {
	mu     sync.Mutex
	sounds int
	shows  []string
	err    error
}

func (n *recordingNotifier) PlaySound() {
	n.mu.Lock()
	n.sounds++
	n.mu.Unlock()
}

func (n *recordingNotifier) Show(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.shows = append(n.shows, title+": "+body)
	return nil
}

type fakeWindow struct{ focused bool }

func (w fakeWindow) Focused() bool { return w.focused }
func (w fakeWindow) Visible() bool { return w.focused }

// failingStore wraps a Store and fails every write.
type failingStore struct {
	store.Store
}

func (f failingStore) SetDocument(context.Context, string, map[string]any, bool) error {
	return errors.New("write refused")
}

func seedMessage(t *testing.T, st store.Store, id, userID, text string, createdAt int64) {
	t.Helper()
	err := st.SetDocument(context.Background(), Collection+"/"+id, map[string]any{
		"text":       text,
		"user_id":    userID,
		"user_name":  "user-" + userID,
		"created_at": createdAt,
	}, false)
	if err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
}

func newTestStream(st store.Store, w notify.WindowState) (*Stream, *recordingNotifier) {
	n := &recordingNotifier{}
	s := NewStream(st, clock.NewMock(testStart), n, w)
	s.SetSender(&Sender{ID: "self", Name: "Self"})
	return s, n
}

func TestSend_Validation(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	s, _ := newTestStream(st, fakeWindow{})

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty", "", ErrEmptyMessage},
		{"whitespace only", "   \t\n ", ErrEmptyMessage},
		{"too long", strings.Repeat("a", models.MaxMessageLength+1), ErrMessageTooLong},
		{"at limit", strings.Repeat("a", models.MaxMessageLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Send(context.Background(), tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Send(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}

	// Rejected sends never reach the store.
	docs, _ := st.ListCollection(context.Background(), Collection)
	if len(docs) != 1 {
		t.Errorf("expected only the valid message written, got %d", len(docs))
	}
}

func TestSend_RequiresSignedInUser(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	s, _ := newTestStream(st, fakeWindow{})
	s.SetSender(nil)

	if err := s.Send(context.Background(), "hello"); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("expected ErrNotSignedIn, got %v", err)
	}
}

func TestSend_SingleInFlight(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	s, _ := newTestStream(st, fakeWindow{})

	s.mu.Lock()
	s.sending = true
	s.mu.Unlock()

	if err := s.Send(context.Background(), "hello"); !errors.Is(err, ErrSendInFlight) {
		t.Errorf("expected ErrSendInFlight, got %v", err)
	}
}

func TestSend_AssignsStoreTimestamp(t *testing.T) {
	clk := clock.NewMock(testStart)
	st := store.NewMemoryStore(clk)
	s, _ := newTestStream(st, fakeWindow{})

	if err := s.Send(context.Background(), "  hello world  "); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	docs, _ := st.ListCollection(context.Background(), Collection)
	if len(docs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(docs))
	}
	if got := store.StringField(docs[0].Data, "text"); got != "hello world" {
		t.Errorf("expected trimmed text, got %q", got)
	}
	if got := store.Int64Field(docs[0].Data, "created_at"); got != clock.Millis(testStart) {
		t.Errorf("expected store-assigned timestamp, got %d", got)
	}
}

func TestSend_FailureRestoresDraft(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	s, _ := newTestStream(failingStore{st}, fakeWindow{})

	err := s.Send(context.Background(), "precious words")
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed, got %v", err)
	}
	if got := s.Draft(); got != "precious words" {
		t.Errorf("expected draft restored, got %q", got)
	}
	// Draft is consumed once.
	if got := s.Draft(); got != "" {
		t.Errorf("expected draft cleared after read, got %q", got)
	}
}

func TestStream_FirstSnapshotNeverNotifies(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "pre-existing one", 1000)
	seedMessage(t, st, "m2", "other", "pre-existing two", 2000)

	s, n := newTestStream(st, fakeWindow{})
	s.Start()
	defer s.Stop()

	if n.sounds != 0 {
		t.Errorf("first snapshot must not notify, got %d sounds", n.sounds)
	}
	if len(s.Messages()) != 2 {
		t.Errorf("expected history loaded, got %d", len(s.Messages()))
	}
}

func TestStream_NewForeignMessageNotifies(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "hello", 1000)

	s, n := newTestStream(st, fakeWindow{focused: true})
	s.Start()
	defer s.Stop()

	seedMessage(t, st, "m2", "other", "are you there?", 2000)

	if n.sounds != 1 {
		t.Fatalf("expected 1 sound, got %d", n.sounds)
	}
	// Panel closed: an OS notification fires too.
	if len(n.shows) != 1 {
		t.Fatalf("expected OS notification while panel closed, got %d", len(n.shows))
	}
}

func TestStream_OpenFocusedPanelSkipsOSNotification(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "hello", 1000)

	s, n := newTestStream(st, fakeWindow{focused: true})
	s.Start()
	defer s.Stop()
	s.SetOpen(true)

	seedMessage(t, st, "m2", "other", "ping", 2000)

	if n.sounds != 1 {
		t.Errorf("sound cue still plays with the panel open, got %d", n.sounds)
	}
	if len(n.shows) != 0 {
		t.Errorf("no OS notification with panel open and focused, got %d", len(n.shows))
	}
}

func TestStream_UnfocusedWindowGetsOSNotification(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "hello", 1000)

	s, n := newTestStream(st, fakeWindow{focused: false})
	s.Start()
	defer s.Stop()
	s.SetOpen(true)

	seedMessage(t, st, "m2", "other", "ping", 2000)

	if len(n.shows) != 1 {
		t.Errorf("expected OS notification for unfocused window, got %d", len(n.shows))
	}
}

func TestStream_OwnMessageNeverNotifies(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "hello", 1000)

	s, n := newTestStream(st, fakeWindow{})
	s.Start()
	defer s.Stop()

	seedMessage(t, st, "m2", "self", "my own reply", 2000)

	if n.sounds != 0 {
		t.Errorf("own message must not notify, got %d sounds", n.sounds)
	}
}

func TestStream_PermissionDeniedIsSilent(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	seedMessage(t, st, "m1", "other", "hello", 1000)

	s, n := newTestStream(st, fakeWindow{})
	n.err = notify.ErrPermissionDenied
	s.Start()
	defer s.Stop()

	seedMessage(t, st, "m2", "other", "ping", 2000)

	// The sound cue still plays; the refused notification is swallowed.
	if n.sounds != 1 {
		t.Errorf("expected sound despite denied permission, got %d", n.sounds)
	}
}

func TestStream_HistoryCapKeepsNewest(t *testing.T) {
	st := store.NewMemoryStore(clock.NewMock(testStart))
	for i := 0; i < HistoryLimit+5; i++ {
		seedMessage(t, st, msgID(i), "other", "msg", int64(1000+i))
	}

	s, _ := newTestStream(st, fakeWindow{})
	s.Start()
	defer s.Stop()

	msgs := s.Messages()
	if len(msgs) != HistoryLimit {
		t.Fatalf("expected %d messages, got %d", HistoryLimit, len(msgs))
	}
	// Oldest first for display; the five oldest were dropped.
	if msgs[0].CreatedAt != 1005 {
		t.Errorf("expected oldest kept message at 1005, got %d", msgs[0].CreatedAt)
	}
	if msgs[len(msgs)-1].CreatedAt != int64(1000+HistoryLimit+4) {
		t.Errorf("expected newest message last, got %d", msgs[len(msgs)-1].CreatedAt)
	}
}

func TestShowAvatar(t *testing.T) {
	msgs := []models.ChatMessage{
		{UserID: "a"},
		{UserID: "a"},
		{UserID: "b"},
		{UserID: "a"},
		{UserID: "a"},
	}

	want := []bool{true, false, true, true, false}
	for i, w := range want {
		if got := ShowAvatar(msgs, i); got != w {
			t.Errorf("ShowAvatar(%d) = %v, want %v", i, got, w)
		}
	}
}

func msgID(i int) string {
	// Zero-padded so IDs do not affect snapshot ordering checks.
	return "m" + string(rune('0'+i/100)) + string(rune('0'+(i/10)%10)) + string(rune('0'+i%10))
}
