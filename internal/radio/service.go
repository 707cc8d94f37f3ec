package radio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/acllc88/bugleboy-radio/internal/chat"
	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/favorites"
	"github.com/acllc88/bugleboy-radio/internal/liveconfig"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/notify"
	"github.com/acllc88/bugleboy-radio/internal/player"
	"github.com/acllc88/bugleboy-radio/internal/presence"
	"github.com/acllc88/bugleboy-radio/internal/stations"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

// Broadcaster pushes events to connected UI clients.
type Broadcaster interface {
	Broadcast(event string, payload interface{})
}

var ErrUnknownStation = errors.New("unknown station")

// Service composes the player, presence, chat and live-config components
// for one listener and relays their state changes to the UI hub.
type Service struct {
	store     store.Store
	clock     clock.Clock
	geo       presence.GeoResolver
	catalog   *stations.Catalog
	engine    *player.Engine
	chat      *chat.Stream
	unread    *chat.UnreadCounter
	favorites *favorites.Favorites
	config    *liveconfig.Channel
	window    *notify.UIState
	hub       Broadcaster

	mu          sync.Mutex
	user        *models.User
	tracker     *presence.Tracker
	online      []models.PresenceRecord
	unsubOnline store.UnsubscribeFunc
}

func NewService(
	st store.Store,
	clk clock.Clock,
	geoClient presence.GeoResolver,
	catalog *stations.Catalog,
	notifier notify.Notifier,
	hub Broadcaster,
	transport player.TransportFactory,
) *Service {
	s := &Service{
		store:   st,
		clock:   clk,
		geo:     geoClient,
		catalog: catalog,
		window:  notify.NewUIState(),
		hub:     hub,
	}

	s.engine = player.NewEngine(transport, func(state player.State) {
		s.hub.Broadcast(models.EventPlayerState, state)
	})

	s.chat = chat.NewStream(st, clk, notifier, s.window)
	s.unread = chat.NewUnreadCounter(clk, func(n int) {
		s.hub.Broadcast(models.EventChatUnread, map[string]int{"count": n})
	})
	s.chat.OnSnapshot(func(msgs []models.ChatMessage) {
		s.unread.HandleSnapshot(msgs)
		s.hub.Broadcast(models.EventChatSnapshot, msgs)
	})

	s.config = liveconfig.NewChannel(st, clk)
	s.config.OnChange(func(settings models.Settings) {
		s.hub.Broadcast(models.EventConfigUpdate, settings)
	})

	s.favorites = favorites.NewFavorites(st)

	return s
}

// Start opens the live subscriptions: chat, settings and the online roster.
func (s *Service) Start() {
	s.chat.Start()
	s.config.Watch()

	unsub := presence.WatchOnline(s.store, s.clock, func(users []models.PresenceRecord) {
		s.mu.Lock()
		s.online = users
		s.mu.Unlock()
		s.hub.Broadcast(models.EventPresenceCount, map[string]interface{}{
			"count": len(users),
			"users": users,
		})
	})

	s.mu.Lock()
	s.unsubOnline = unsub
	s.mu.Unlock()
}

// Stop tears everything down: presence record deleted, subscriptions
// cancelled, playback released.
func (s *Service) Stop() {
	s.mu.Lock()
	tracker := s.tracker
	s.tracker = nil
	unsub := s.unsubOnline
	s.unsubOnline = nil
	s.mu.Unlock()

	if tracker != nil {
		tracker.Stop()
	}
	if unsub != nil {
		unsub()
	}
	s.chat.Stop()
	s.config.Stop()
	s.engine.Close()
}

// SignIn binds the service to an account: chat sender, unread self filter,
// favorites merge and a presence heartbeat.
func (s *Service) SignIn(ctx context.Context, user *models.User) error {
	if err := s.favorites.SignIn(ctx, user.ID.String()); err != nil {
		return err
	}

	s.chat.SetSender(&chat.Sender{
		ID:    user.ID.String(),
		Name:  user.ChatName(),
		Photo: user.AvatarURL,
	})
	s.unread.SetSelf(user.ID.String())

	tracker := presence.NewTracker(s.store, s.clock, s.geo, presence.Identity{
		UserID:    user.ID.String(),
		UserName:  user.ChatName(),
		UserPhoto: user.AvatarURL,
	})
	tracker.Start(ctx)

	s.mu.Lock()
	old := s.tracker
	s.tracker = tracker
	s.user = user
	s.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	return nil
}

// SignOut drops the account binding and the presence record. Playback is
// untouched; listening does not require an account.
func (s *Service) SignOut() {
	s.mu.Lock()
	tracker := s.tracker
	s.tracker = nil
	s.user = nil
	s.mu.Unlock()

	if tracker != nil {
		tracker.Stop()
	}
	s.chat.SetSender(nil)
	s.favorites.SignOut()
}

// User returns the signed-in account, or nil.
func (s *Service) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Play starts (or toggles) playback of a catalog station.
func (s *Service) Play(stationID string) error {
	station, ok := s.catalog.Get(stationID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStation, stationID)
	}
	s.engine.Play(station)
	return nil
}

func (s *Service) TogglePlay()         { s.engine.TogglePlay() }
func (s *Service) SetVolume(v float64) { s.engine.SetVolume(v) }
func (s *Service) ToggleMute()         { s.engine.ToggleMute() }

func (s *Service) PlayerState() player.State {
	return s.engine.State()
}

// SendChat posts a message as the signed-in user.
func (s *Service) SendChat(ctx context.Context, text string) error {
	return s.chat.Send(ctx, text)
}

// OpenChat marks the panel open and clears the unread badge.
func (s *Service) OpenChat() {
	s.unread.Open()
	s.chat.SetOpen(true)
}

// CloseChat marks the panel closed; unread counting resumes from now.
func (s *Service) CloseChat() {
	s.chat.SetOpen(false)
	s.unread.Close()
}

func (s *Service) ChatMessages() []models.ChatMessage { return s.chat.Messages() }
func (s *Service) ChatDraft() string                  { return s.chat.Draft() }
func (s *Service) Unread() int                        { return s.unread.Count() }

// SetWindowState records UI focus and visibility, which gate OS
// notifications. Hiding the window also suspends the presence heartbeat and
// removes the record; becoming visible again re-asserts presence immediately.
func (s *Service) SetWindowState(focused, visible bool) {
	s.window.Set(focused, visible)

	s.mu.Lock()
	tracker := s.tracker
	s.mu.Unlock()

	if tracker != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		tracker.SetSuspended(ctx, !visible)
	}
}

// OnlineUsers returns the last observed live roster.
func (s *Service) OnlineUsers() []models.PresenceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PresenceRecord, len(s.online))
	copy(out, s.online)
	return out
}

func (s *Service) Settings() models.Settings { return s.config.Current() }

// ConfigChannel exposes the live-config channel for the admin surface.
func (s *Service) ConfigChannel() *liveconfig.Channel { return s.config }

func (s *Service) Catalog() *stations.Catalog      { return s.catalog }
func (s *Service) Favorites() *favorites.Favorites { return s.favorites }
