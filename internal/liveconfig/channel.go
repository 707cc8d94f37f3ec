package liveconfig

import (
	"context"
	"log"
	"sync"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

// DocumentPath is the singleton live-config document every client watches.
const DocumentPath = "settings/general"

// Channel is the admin live-config channel: one shared document subscribed
// by all clients and written by the admin console. Writes are whole-document
// merge upserts on a fixed field set; concurrent admin writers race with
// last write winning.
type Channel struct {
	store store.Store
	clock clock.Clock

	mu       sync.Mutex
	current  models.Settings
	onChange []func(models.Settings)
	unsub    store.UnsubscribeFunc
}

func NewChannel(st store.Store, clk clock.Clock) *Channel {
	return &Channel{store: st, clock: clk}
}

// OnChange registers a callback fired with the new settings after every
// update. Register before Watch.
func (c *Channel) OnChange(fn func(models.Settings)) {
	c.mu.Lock()
	c.onChange = append(c.onChange, fn)
	c.mu.Unlock()
}

// Watch opens the live subscription. Every client watches at all times, not
// just while the admin console is open.
func (c *Channel) Watch() {
	unsub := c.store.Subscribe(DocumentPath, c.handleSnapshot, func(err error) {
		// Config subscription errors are contained; clients keep their
		// last-known settings.
		log.Printf("Settings subscription error: %v", err)
	})
	c.mu.Lock()
	c.unsub = unsub
	c.mu.Unlock()
}

// Stop cancels the subscription.
func (c *Channel) Stop() {
	c.mu.Lock()
	unsub := c.unsub
	c.unsub = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// Current returns the last observed settings.
func (c *Channel) Current() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Save upserts the full settings document, stamping updated_at/updated_by.
func (c *Channel) Save(ctx context.Context, s models.Settings, updatedBy string) error {
	data := map[string]any{
		"maintenance_mode":     s.MaintenanceMode,
		"maintenance_message":  s.MaintenanceMessage,
		"maintenance_end_time": s.MaintenanceEndTime,
		"announcement":         s.Announcement,
		"announcement_enabled": s.AnnouncementEnabled,
		"updated_at":           clock.Millis(c.clock.Now()),
		"updated_by":           updatedBy,
	}
	return c.store.SetDocument(ctx, DocumentPath, data, true)
}

// SetMaintenance flips maintenance mode, carrying the other fields over
// from the current settings.
func (c *Channel) SetMaintenance(ctx context.Context, on bool, message, endTime, updatedBy string) error {
	s := c.Current()
	s.MaintenanceMode = on
	s.MaintenanceMessage = message
	s.MaintenanceEndTime = endTime
	return c.Save(ctx, s, updatedBy)
}

// MaintenanceActive reports whether s forces the restricted maintenance
// view for a client; an authenticated admin session bypasses it.
func MaintenanceActive(s models.Settings, isAdmin bool) bool {
	return s.MaintenanceMode && !isAdmin
}

func (c *Channel) handleSnapshot(docs []store.Document) {
	var s models.Settings
	if len(docs) > 0 {
		s = settingsFromDoc(docs[0])
	}

	c.mu.Lock()
	c.current = s
	callbacks := make([]func(models.Settings), len(c.onChange))
	copy(callbacks, c.onChange)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn(s)
	}
}

func settingsFromDoc(doc store.Document) models.Settings {
	return models.Settings{
		MaintenanceMode:     store.BoolField(doc.Data, "maintenance_mode"),
		MaintenanceMessage:  store.StringField(doc.Data, "maintenance_message"),
		MaintenanceEndTime:  store.StringField(doc.Data, "maintenance_end_time"),
		Announcement:        store.StringField(doc.Data, "announcement"),
		AnnouncementEnabled: store.BoolField(doc.Data, "announcement_enabled"),
		UpdatedAt:           store.Int64Field(doc.Data, "updated_at"),
		UpdatedBy:           store.StringField(doc.Data, "updated_by"),
	}
}
