package store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by GetDocument when the document does not exist.
var ErrNotFound = errors.New("document not found")

// ServerTimestamp is a sentinel field value. Stores replace it with their
// own clock (epoch millis) at write time, so message ordering never trusts
// the writer's clock.
var ServerTimestamp = serverTimestamp{}

type serverTimestamp struct{}

// Document is one document in a collection snapshot. The last path segment
// is the document ID.
type Document struct {
	Path string
	Data map[string]any
}

// ID returns the last segment of the document path.
func (d Document) ID() string {
	if i := strings.LastIndex(d.Path, "/"); i >= 0 {
		return d.Path[i+1:]
	}
	return d.Path
}

// UnsubscribeFunc cancels a live subscription. Safe to call more than once.
type UnsubscribeFunc func()

// Store is the generic document store every shared component coordinates
// through. Paths alternate collection/document segments: an odd number of
// segments names a collection ("chatMessages"), an even number names a
// document ("settings/general").
//
// Subscriptions are level-triggered: each snapshot is a full current-state
// replace, never a delta, and consumers must tolerate repeated identical
// snapshots. DeleteDocument is idempotent; deleting a missing document is
// not an error.
type Store interface {
	GetDocument(ctx context.Context, path string) (map[string]any, error)
	SetDocument(ctx context.Context, path string, data map[string]any, merge bool) error
	DeleteDocument(ctx context.Context, path string) error
	ListCollection(ctx context.Context, path string) ([]Document, error)
	Subscribe(path string, onSnapshot func([]Document), onError func(error)) UnsubscribeFunc
}

// IsDocumentPath reports whether path names a document rather than a
// collection.
func IsDocumentPath(path string) bool {
	return strings.Count(path, "/")%2 == 1
}
