package radio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/geo"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/player"
	"github.com/acllc88/bugleboy-radio/internal/stations"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

var testStart = time.UnixMilli(1_700_000_000_000)

type recordingHub struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHub) Broadcast(event string, payload interface{}) {
	h.mu.Lock()
	h.events = append(h.events, event)
	h.mu.Unlock()
}

func (h *recordingHub) count(event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, e := range h.events {
		if e == event {
			n++
		}
	}
	return n
}

type silentNotifier struct{}

func (silentNotifier) PlaySound()             {}
func (silentNotifier) Show(_, _ string) error { return nil }

type stubGeo struct{}

func (stubGeo) Lookup(context.Context) (geo.Country, error) { return geo.Default, nil }

type nullTransport struct{ emit func(player.TransportEvent) }

func (t *nullTransport) Load(url string)     { t.emit(player.TransportReady) }
func (t *nullTransport) Play()               {}
func (t *nullTransport) Pause()              {}
func (t *nullTransport) Stop()               {}
func (t *nullTransport) SetVolume(v float64) {}

func newTestService(t *testing.T) (*Service, *recordingHub, store.Store) {
	t.Helper()
	clk := clock.NewMock(testStart)
	st := store.NewMemoryStore(clk)
	hub := &recordingHub{}

	factory := func(onEvent func(player.TransportEvent)) player.Transport {
		return &nullTransport{emit: onEvent}
	}

	svc := NewService(st, clk, stubGeo{}, stations.NewCatalog(), silentNotifier{}, hub, factory)
	svc.Start()
	t.Cleanup(svc.Stop)
	return svc, hub, st
}

func TestService_PlayBroadcastsState(t *testing.T) {
	svc, hub, _ := newTestService(t)

	if err := svc.Play("kexp"); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !svc.PlayerState().Playing {
		t.Error("expected playing state after ready transport")
	}
	if hub.count(models.EventPlayerState) == 0 {
		t.Error("expected player.state broadcast")
	}
}

func TestService_PlayUnknownStation(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.Play("no-such-station"); err == nil {
		t.Fatal("expected error for unknown station")
	}
}

func TestService_SignInStartsPresence(t *testing.T) {
	svc, _, st := newTestService(t)

	user := &models.User{ID: uuid.New(), Email: "dj@example.com", DisplayName: "DJ"}
	if err := svc.SignIn(context.Background(), user); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	data, err := st.GetDocument(context.Background(), "onlineUsers/"+user.ID.String())
	if err != nil {
		t.Fatalf("expected presence record after sign in: %v", err)
	}
	if got := store.StringField(data, "user_name"); got != "DJ" {
		t.Errorf("unexpected presence name %q", got)
	}

	svc.SignOut()
	if _, err := st.GetDocument(context.Background(), "onlineUsers/"+user.ID.String()); err != store.ErrNotFound {
		t.Errorf("expected presence record removed on sign out, got %v", err)
	}
}

func TestService_ChatSnapshotFeedsUnreadAndHub(t *testing.T) {
	svc, hub, st := newTestService(t)

	user := &models.User{ID: uuid.New(), Email: "dj@example.com", DisplayName: "DJ"}
	if err := svc.SignIn(context.Background(), user); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}

	err := st.SetDocument(context.Background(), "chatMessages/m1", map[string]any{
		"text":       "hello",
		"user_id":    "someone-else",
		"user_name":  "Else",
		"created_at": clock.Millis(testStart) + 1000,
	}, false)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if hub.count(models.EventChatSnapshot) == 0 {
		t.Error("expected chat.snapshot broadcast")
	}
	if got := svc.Unread(); got != 1 {
		t.Errorf("expected 1 unread, got %d", got)
	}

	svc.OpenChat()
	if got := svc.Unread(); got != 0 {
		t.Errorf("expected unread cleared on open, got %d", got)
	}
}

func TestService_HiddenWindowSuspendsPresence(t *testing.T) {
	svc, _, st := newTestService(t)

	user := &models.User{ID: uuid.New(), Email: "dj@example.com", DisplayName: "DJ"}
	if err := svc.SignIn(context.Background(), user); err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	path := "onlineUsers/" + user.ID.String()

	svc.SetWindowState(false, false)
	if _, err := st.GetDocument(context.Background(), path); err != store.ErrNotFound {
		t.Errorf("expected presence record removed while window hidden, got %v", err)
	}

	svc.SetWindowState(true, true)
	if _, err := st.GetDocument(context.Background(), path); err != nil {
		t.Errorf("expected presence record restored when visible again: %v", err)
	}
}

func TestService_PresenceCountBroadcast(t *testing.T) {
	svc, hub, st := newTestService(t)

	err := st.SetDocument(context.Background(), "onlineUsers/u9", map[string]any{
		"user_name": "Visitor",
		"last_seen": clock.Millis(testStart),
	}, false)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if hub.count(models.EventPresenceCount) == 0 {
		t.Error("expected presence.count broadcast")
	}
	if got := len(svc.OnlineUsers()); got != 1 {
		t.Errorf("expected 1 online user, got %d", got)
	}
}
