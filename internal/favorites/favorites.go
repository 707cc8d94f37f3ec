package favorites

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/acllc88/bugleboy-radio/internal/store"
)

// Collection holds one document per account; favorites live in the
// "favorite_stations" field as a list of station ids.
const Collection = "users"

// Favorites tracks a user's favorite stations. Signed-out toggles are kept
// locally; signing in merges the local set with the stored one (union) and
// persists the result, so favorites collected before login survive it.
type Favorites struct {
	store store.Store

	mu     sync.Mutex
	userID string
	ids    map[string]bool
}

func NewFavorites(st store.Store) *Favorites {
	return &Favorites{store: st, ids: make(map[string]bool)}
}

// SignIn merges the local favorites with the account's stored set and
// writes the union back.
func (f *Favorites) SignIn(ctx context.Context, userID string) error {
	data, err := f.store.GetDocument(ctx, Collection+"/"+userID)
	if err != nil && err != store.ErrNotFound {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	f.mu.Lock()
	f.userID = userID
	for _, id := range stationIDs(data) {
		f.ids[id] = true
	}
	merged := f.listLocked()
	f.mu.Unlock()

	return f.persist(ctx, userID, merged)
}

// SignOut drops the account binding but keeps the local set, matching what
// the user still sees on screen.
func (f *Favorites) SignOut() {
	f.mu.Lock()
	f.userID = ""
	f.mu.Unlock()
}

// Toggle flips a station's favorite status and persists it when signed in.
// It returns the new status.
func (f *Favorites) Toggle(ctx context.Context, stationID string) (bool, error) {
	f.mu.Lock()
	if f.ids[stationID] {
		delete(f.ids, stationID)
	} else {
		f.ids[stationID] = true
	}
	now := f.ids[stationID]
	userID := f.userID
	list := f.listLocked()
	f.mu.Unlock()

	if userID == "" {
		return now, nil
	}
	if err := f.persist(ctx, userID, list); err != nil {
		return now, err
	}
	return now, nil
}

// IsFavorite reports whether a station is in the set.
func (f *Favorites) IsFavorite(stationID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ids[stationID]
}

// List returns the favorite station ids, sorted.
func (f *Favorites) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listLocked()
}

func (f *Favorites) listLocked() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (f *Favorites) persist(ctx context.Context, userID string, ids []string) error {
	err := f.store.SetDocument(ctx, Collection+"/"+userID, map[string]any{
		"favorite_stations": ids,
	}, true)
	if err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

func stationIDs(data map[string]any) []string {
	raw, ok := data["favorite_stations"]
	if !ok {
		return nil
	}
	var out []string
	switch list := raw.(type) {
	case []string:
		out = list
	case []any:
		for _, v := range list {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
