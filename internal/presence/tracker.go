package presence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/acllc88/bugleboy-radio/internal/clock"
	"github.com/acllc88/bugleboy-radio/internal/geo"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

const (
	// HeartbeatInterval is how often the tracker re-asserts its own record.
	HeartbeatInterval = 10 * time.Second
	// ReapInterval is how often any client sweeps the collection for stale
	// records. Reaping is cooperative and idempotent.
	ReapInterval = 15 * time.Second
	// StaleAfter is the liveness threshold. Readers must filter records
	// older than this even before the reaper has deleted them.
	StaleAfter = 30 * time.Second

	// Collection is the shared presence collection path.
	Collection = "onlineUsers"
)

// Identity is the signed-in user a tracker heartbeats for.
type Identity struct {
	UserID    string
	UserName  string
	UserPhoto *string
}

// GeoResolver resolves cosmetic country metadata for presence records.
type GeoResolver interface {
	Lookup(ctx context.Context) (geo.Country, error)
}

// Tracker keeps one presence record alive for the current user and sweeps
// expired peers. The heartbeat and the reaper are independent schedules
// coordinating only through the store: any client may reap.
type Tracker struct {
	store    store.Store
	clock    clock.Clock
	geo      GeoResolver
	identity Identity

	mu        sync.Mutex
	country   geo.Country
	suspended bool

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewTracker(st store.Store, clk clock.Clock, geoClient GeoResolver, identity Identity) *Tracker {
	return &Tracker{
		store:    st,
		clock:    clk,
		geo:      geoClient,
		identity: identity,
		country:  geo.Default,
		stop:     make(chan struct{}),
	}
}

// Start resolves country metadata once, writes the first record, performs an
// immediate sweep, and launches the heartbeat and reaper schedules.
func (t *Tracker) Start(ctx context.Context) {
	if t.geo != nil {
		country, err := t.geo.Lookup(ctx)
		if err != nil {
			log.Printf("Geolocation lookup failed, using fallback: %v", err)
		}
		t.mu.Lock()
		t.country = country
		t.mu.Unlock()
	}

	t.heartbeat(ctx)
	t.sweep(ctx)

	t.wg.Add(1)
	go t.run()
}

// Stop cancels the schedules and best-effort deletes the caller's record.
// A failed delete is fine: the staleness filter is the backstop.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
	t.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := t.store.DeleteDocument(ctx, t.recordPath()); err != nil {
		log.Printf("Failed to delete own presence record: %v", err)
	}
}

// Suspend pauses heartbeats and removes the record, for when the client is
// hidden. Resume with SetSuspended(false) re-asserts presence immediately.
func (t *Tracker) SetSuspended(ctx context.Context, suspended bool) {
	t.mu.Lock()
	if t.suspended == suspended {
		t.mu.Unlock()
		return
	}
	t.suspended = suspended
	t.mu.Unlock()

	if suspended {
		if err := t.store.DeleteDocument(ctx, t.recordPath()); err != nil {
			log.Printf("Failed to delete presence record on suspend: %v", err)
		}
		return
	}
	t.heartbeat(ctx)
}

// run owns the heartbeat and reaper schedules. Its lifetime is governed by
// Stop, not by the context Start was called with, which may be a short-lived
// request context.
func (t *Tracker) run() {
	defer t.wg.Done()

	heartbeat := time.NewTicker(HeartbeatInterval)
	defer heartbeat.Stop()
	reap := time.NewTicker(ReapInterval)
	defer reap.Stop()

	ctx := context.Background()
	for {
		select {
		case <-t.stop:
			return
		case <-heartbeat.C:
			t.heartbeat(ctx)
		case <-reap.C:
			t.sweep(ctx)
		}
	}
}

// heartbeat upserts the caller's record with the current timestamp. Errors
// are logged and swallowed: presence is best-effort.
func (t *Tracker) heartbeat(ctx context.Context) {
	t.mu.Lock()
	if t.suspended {
		t.mu.Unlock()
		return
	}
	country := t.country
	t.mu.Unlock()

	data := map[string]any{
		"user_id":      t.identity.UserID,
		"user_name":    t.identity.UserName,
		"last_seen":    clock.Millis(t.clock.Now()),
		"country_code": country.Code,
		"country_name": country.Name,
		"country_flag": country.Flag,
	}
	if t.identity.UserPhoto != nil {
		data["user_photo"] = *t.identity.UserPhoto
	}

	if err := t.store.SetDocument(ctx, t.recordPath(), data, false); err != nil {
		log.Printf("Presence heartbeat failed: %v", err)
	}
}

// sweep deletes every record older than StaleAfter. Deleting a record
// another client already reaped is a no-op.
func (t *Tracker) sweep(ctx context.Context) {
	docs, err := t.store.ListCollection(ctx, Collection)
	if err != nil {
		log.Printf("Presence sweep failed: %v", err)
		return
	}

	now := clock.Millis(t.clock.Now())
	for _, doc := range docs {
		lastSeen := millisField(doc.Data, "last_seen")
		if lastSeen == 0 || now-lastSeen > StaleAfter.Milliseconds() {
			if err := t.store.DeleteDocument(ctx, doc.Path); err != nil {
				log.Printf("Failed to reap stale presence %s: %v", doc.Path, err)
			}
		}
	}
}

func (t *Tracker) recordPath() string {
	return Collection + "/" + t.identity.UserID
}
