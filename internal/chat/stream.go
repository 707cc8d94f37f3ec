package chat

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/notify"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

const (
	// Collection is the shared chat collection path.
	Collection = "chatMessages"
	// HistoryLimit bounds the live query to the most recent messages.
	// Older history is deliberately unreachable through this stream.
	HistoryLimit = 100
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds maximum length")
	ErrNotSignedIn    = errors.New("not signed in")
	ErrSendInFlight   = errors.New("a send is already in flight")
	ErrSendFailed     = errors.New("failed to send message")
)

// Sender identifies the authenticated author of outgoing messages.
type Sender struct {
	ID    string
	Name  string
	Photo *string
}

// Stream is the append-only ordered chat log with its live subscription and
// notification side effects. One Stream exists per client process and stays
// subscribed even while the chat panel is closed, so notifications fire for
// background messages.
type Stream struct {
	store    store.Store
	clock    clock.Clock
	notifier notify.Notifier
	window   notify.WindowState

	mu            sync.Mutex
	sender        *Sender
	messages      []models.ChatMessage
	sending       bool
	draft         string
	firstSnapshot bool
	lastMessageID string
	panelOpen     bool
	onSnapshot    []func([]models.ChatMessage)
	unsub         store.UnsubscribeFunc
}

func NewStream(st store.Store, clk clock.Clock, notifier notify.Notifier, window notify.WindowState) *Stream {
	return &Stream{
		store:         st,
		clock:         clk,
		notifier:      notifier,
		window:        window,
		firstSnapshot: true,
	}
}

// OnSnapshot registers a callback invoked with the display-ordered message
// list after every subscription update. Register before Start.
func (s *Stream) OnSnapshot(fn func([]models.ChatMessage)) {
	s.mu.Lock()
	s.onSnapshot = append(s.onSnapshot, fn)
	s.mu.Unlock()
}

// Start opens the live subscription.
func (s *Stream) Start() {
	unsub := s.store.Subscribe(Collection, s.handleSnapshot, func(err error) {
		log.Printf("Chat subscription error: %v", err)
	})
	s.mu.Lock()
	s.unsub = unsub
	s.mu.Unlock()
}

// Stop cancels the subscription. A leaked subscription causes duplicate
// notification sounds, so teardown is mandatory.
func (s *Stream) Stop() {
	s.mu.Lock()
	unsub := s.unsub
	s.unsub = nil
	s.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// SetSender records the authenticated user, or nil on sign-out.
func (s *Stream) SetSender(sender *Sender) {
	s.mu.Lock()
	s.sender = sender
	s.mu.Unlock()
}

// SetOpen records whether the chat panel is open; it gates OS notifications.
func (s *Stream) SetOpen(open bool) {
	s.mu.Lock()
	s.panelOpen = open
	s.mu.Unlock()
}

// Messages returns the current display-ordered (oldest first) message list.
func (s *Stream) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Draft returns text from a failed send so the user can retry, clearing it.
func (s *Stream) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	s.draft = ""
	return d
}

// Send appends a message. The input is considered cleared the moment Send
// accepts the text (optimistic update); on a store failure the text is
// preserved as the draft and an error is returned. At most one send may be
// in flight per client; there is no automatic retry.
func (s *Stream) Send(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	if len([]rune(trimmed)) > models.MaxMessageLength {
		return ErrMessageTooLong
	}

	s.mu.Lock()
	if s.sender == nil {
		s.mu.Unlock()
		return ErrNotSignedIn
	}
	if s.sending {
		s.mu.Unlock()
		return ErrSendInFlight
	}
	s.sending = true
	sender := *s.sender
	s.mu.Unlock()

	data := map[string]any{
		"text":       trimmed,
		"user_id":    sender.ID,
		"user_name":  sender.Name,
		"created_at": store.ServerTimestamp,
	}
	if sender.Photo != nil {
		data["user_photo"] = *sender.Photo
	}

	err := s.store.SetDocument(ctx, Collection+"/"+uuid.New().String(), data, false)

	s.mu.Lock()
	s.sending = false
	if err != nil {
		s.draft = trimmed
	} else {
		s.draft = ""
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("Failed to send chat message: %v", err)
		return ErrSendFailed
	}
	return nil
}

func (s *Stream) handleSnapshot(docs []store.Document) {
	msgs := make([]models.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		msgs = append(msgs, messageFromDoc(doc))
	}

	// The live query is newest-first capped at HistoryLimit, then reversed
	// for display. A message pending its store timestamp sorts newest.
	sort.SliceStable(msgs, func(i, j int) bool {
		return effectiveTime(msgs[i]) > effectiveTime(msgs[j])
	})
	if len(msgs) > HistoryLimit {
		msgs = msgs[:HistoryLimit]
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}

	s.mu.Lock()
	s.messages = msgs

	var notifySound, notifyOS bool
	var newest models.ChatMessage

	if s.firstSnapshot {
		// Never notify for pre-existing history.
		if len(msgs) > 0 {
			s.firstSnapshot = false
			s.lastMessageID = msgs[len(msgs)-1].ID
		}
	} else if len(msgs) > 0 {
		newest = msgs[len(msgs)-1]
		selfID := ""
		if s.sender != nil {
			selfID = s.sender.ID
		}
		if newest.ID != s.lastMessageID && newest.UserID != selfID {
			notifySound = true
			if !s.panelOpen || !s.window.Focused() {
				notifyOS = true
			}
		}
		s.lastMessageID = newest.ID
	}

	callbacks := make([]func([]models.ChatMessage), len(s.onSnapshot))
	copy(callbacks, s.onSnapshot)
	s.mu.Unlock()

	if notifySound {
		s.notifier.PlaySound()
		if notifyOS {
			if err := s.notifier.Show(newest.UserName, truncate(newest.Text, 50)); err != nil {
				// Permission refusals are silent; the sound already played.
				if !errors.Is(err, notify.ErrPermissionDenied) {
					log.Printf("Failed to show notification: %v", err)
				}
			}
		}
	}

	for _, fn := range callbacks {
		fn(msgs)
	}
}

// ShowAvatar reports whether message i starts a new visual group: the first
// message, or any message whose author differs from the previous one.
func ShowAvatar(msgs []models.ChatMessage, i int) bool {
	if i == 0 {
		return true
	}
	if i < 0 || i >= len(msgs) {
		return false
	}
	return msgs[i].UserID != msgs[i-1].UserID
}

func messageFromDoc(doc store.Document) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        doc.ID(),
		Text:      store.StringField(doc.Data, "text"),
		UserID:    store.StringField(doc.Data, "user_id"),
		UserName:  store.StringField(doc.Data, "user_name"),
		CreatedAt: store.Int64Field(doc.Data, "created_at"),
	}
	if photo := store.StringField(doc.Data, "user_photo"); photo != "" {
		msg.UserPhoto = &photo
	}
	return msg
}

// effectiveTime orders a pending message (no store timestamp yet) as newest.
func effectiveTime(m models.ChatMessage) int64 {
	if m.CreatedAt == 0 {
		return int64(1)<<62 - 1
	}
	return m.CreatedAt
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
