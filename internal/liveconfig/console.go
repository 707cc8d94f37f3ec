package liveconfig

import (
	"context"
	"fmt"

	"github.com/acllc88/bugleboy-radio/internal/chat"
	"github.com/acllc88/bugleboy-radio/internal/presence"
	"github.com/acllc88/bugleboy-radio/internal/store"
)

// Console bundles the destructive admin operations: bulk purges of the
// coordination collections and basic stats for the dashboard.
type Console struct {
	store store.Store
}

func NewConsole(st store.Store) *Console {
	return &Console{store: st}
}

// Stats is the admin dashboard summary.
type Stats struct {
	ChatMessages int `json:"chat_messages"`
	OnlineUsers  int `json:"online_users"`
}

func (c *Console) Stats(ctx context.Context) (Stats, error) {
	msgs, err := c.store.ListCollection(ctx, chat.Collection)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list chat messages: %w", err)
	}
	users, err := c.store.ListCollection(ctx, presence.Collection)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list online users: %w", err)
	}
	return Stats{ChatMessages: len(msgs), OnlineUsers: len(users)}, nil
}

// PurgeChat deletes every chat message and returns how many were removed.
func (c *Console) PurgeChat(ctx context.Context) (int, error) {
	return c.purge(ctx, chat.Collection)
}

// PurgePresence clears all presence records. Live clients re-appear on
// their next heartbeat.
func (c *Console) PurgePresence(ctx context.Context) (int, error) {
	return c.purge(ctx, presence.Collection)
}

func (c *Console) purge(ctx context.Context, collection string) (int, error) {
	docs, err := c.store.ListCollection(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", collection, err)
	}
	for i, doc := range docs {
		if err := c.store.DeleteDocument(ctx, doc.Path); err != nil {
			return i, fmt.Errorf("failed to delete %s: %w", doc.Path, err)
		}
	}
	return len(docs), nil
}
