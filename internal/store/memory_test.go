package store

import (
	"context"
	"testing"
	"time"

	"github.com/acllc88/bugleboy-radio/internal/clock"
)

func TestMemoryStore_MergeSemantics(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	if err := s.SetDocument(ctx, "settings/general", map[string]any{"a": 1}, true); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if err := s.SetDocument(ctx, "settings/general", map[string]any{"b": 2}, true); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	data, err := s.GetDocument(ctx, "settings/general")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if data["a"] != 1 || data["b"] != 2 {
		t.Errorf("expected merged document {a:1 b:2}, got %v", data)
	}
}

func TestMemoryStore_OverwriteWithoutMerge(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	s.SetDocument(ctx, "settings/general", map[string]any{"a": 1}, false)
	s.SetDocument(ctx, "settings/general", map[string]any{"b": 2}, false)

	data, err := s.GetDocument(ctx, "settings/general")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, ok := data["a"]; ok {
		t.Errorf("expected field a to be dropped on overwrite, got %v", data)
	}
	if data["b"] != 2 {
		t.Errorf("expected b=2, got %v", data)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(nil)

	_, err := s.GetDocument(context.Background(), "settings/missing")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	s.SetDocument(ctx, "onlineUsers/u1", map[string]any{"x": 1}, false)
	if err := s.DeleteDocument(ctx, "onlineUsers/u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.DeleteDocument(ctx, "onlineUsers/u1"); err != nil {
		t.Fatalf("deleting a missing document should not error, got %v", err)
	}
}

func TestMemoryStore_ServerTimestamp(t *testing.T) {
	clk := clock.NewMock(time.UnixMilli(1_700_000_000_000))
	s := NewMemoryStore(clk)
	ctx := context.Background()

	s.SetDocument(ctx, "chatMessages/m1", map[string]any{
		"text":       "hello",
		"created_at": ServerTimestamp,
	}, false)

	data, err := s.GetDocument(ctx, "chatMessages/m1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if data["created_at"] != int64(1_700_000_000_000) {
		t.Errorf("expected store-assigned timestamp, got %v", data["created_at"])
	}
}

func TestMemoryStore_CollectionSubscription(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	var snapshots [][]Document
	unsub := s.Subscribe("chatMessages", func(docs []Document) {
		snapshots = append(snapshots, docs)
	}, nil)
	defer unsub()

	if len(snapshots) != 1 || len(snapshots[0]) != 0 {
		t.Fatalf("expected empty initial snapshot, got %v", snapshots)
	}

	s.SetDocument(ctx, "chatMessages/m1", map[string]any{"text": "one"}, false)
	s.SetDocument(ctx, "chatMessages/m2", map[string]any{"text": "two"}, false)

	if len(snapshots) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snapshots))
	}
	if len(snapshots[2]) != 2 {
		t.Errorf("expected full-state snapshot with 2 docs, got %d", len(snapshots[2]))
	}

	// Writes outside the collection are not delivered.
	s.SetDocument(ctx, "settings/general", map[string]any{"a": 1}, false)
	if len(snapshots) != 3 {
		t.Errorf("unrelated write leaked into subscription")
	}
}

func TestMemoryStore_DocumentSubscription(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	var last []Document
	unsub := s.Subscribe("settings/general", func(docs []Document) {
		last = docs
	}, nil)
	defer unsub()

	s.SetDocument(ctx, "settings/general", map[string]any{"maintenance_mode": true}, true)
	if len(last) != 1 || last[0].Data["maintenance_mode"] != true {
		t.Fatalf("expected document snapshot, got %v", last)
	}

	s.DeleteDocument(ctx, "settings/general")
	if len(last) != 0 {
		t.Errorf("expected empty snapshot after delete, got %v", last)
	}
}

func TestMemoryStore_UnsubscribeStopsDelivery(t *testing.T) {
	s := NewMemoryStore(nil)
	ctx := context.Background()

	count := 0
	unsub := s.Subscribe("chatMessages", func([]Document) { count++ }, nil)
	s.SetDocument(ctx, "chatMessages/m1", map[string]any{"text": "one"}, false)

	unsub()
	unsub() // safe to call twice

	s.SetDocument(ctx, "chatMessages/m2", map[string]any{"text": "two"}, false)
	if count != 2 {
		t.Errorf("expected no delivery after unsubscribe, got %d snapshots", count)
	}
}

func TestDocumentID(t *testing.T) {
	doc := Document{Path: "chatMessages/abc-123"}
	if doc.ID() != "abc-123" {
		t.Errorf("expected abc-123, got %s", doc.ID())
	}
}
