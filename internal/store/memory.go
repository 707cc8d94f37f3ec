package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/acllc88/bugleboy-radio/internal/clock"
)

// MemoryStore is an in-process Store used in tests and as a degraded-mode
// fallback when Redis is unavailable. Snapshots are delivered synchronously
// on the mutating goroutine, which makes test ordering deterministic.
type MemoryStore struct {
	mu     sync.RWMutex
	docs   map[string]map[string]any
	subs   map[int]*memorySub
	nextID int
	clock  clock.Clock
}

type memorySub struct {
	path       string
	onSnapshot func([]Document)
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryStore{
		docs:  make(map[string]map[string]any),
		subs:  make(map[int]*memorySub),
		clock: clk,
	}
}

func (s *MemoryStore) GetDocument(_ context.Context, path string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return nil, ErrNotFound
	}
	return copyData(doc), nil
}

func (s *MemoryStore) SetDocument(_ context.Context, path string, data map[string]any, merge bool) error {
	s.mu.Lock()

	resolved := s.resolveTimestamps(data)
	if merge {
		existing, ok := s.docs[path]
		if !ok {
			existing = make(map[string]any)
		}
		for k, v := range resolved {
			existing[k] = v
		}
		s.docs[path] = existing
	} else {
		s.docs[path] = resolved
	}

	subs := s.matchingSubs(path)
	s.mu.Unlock()

	s.deliver(subs)
	return nil
}

func (s *MemoryStore) DeleteDocument(_ context.Context, path string) error {
	s.mu.Lock()
	_, existed := s.docs[path]
	delete(s.docs, path)
	var subs []*memorySub
	if existed {
		subs = s.matchingSubs(path)
	}
	s.mu.Unlock()

	s.deliver(subs)
	return nil
}

func (s *MemoryStore) ListCollection(_ context.Context, path string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listLocked(path), nil
}

func (s *MemoryStore) Subscribe(path string, onSnapshot func([]Document), _ func(error)) UnsubscribeFunc {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	sub := &memorySub{path: path, onSnapshot: onSnapshot}
	s.subs[id] = sub
	initial := s.snapshotLocked(path)
	s.mu.Unlock()

	// Initial full-state snapshot, like every later one.
	onSnapshot(initial)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// resolveTimestamps replaces ServerTimestamp sentinels with the store clock.
func (s *MemoryStore) resolveTimestamps(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	now := clock.Millis(s.clock.Now())
	for k, v := range data {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = now
			continue
		}
		out[k] = v
	}
	return out
}

func (s *MemoryStore) matchingSubs(changedPath string) []*memorySub {
	var out []*memorySub
	for _, sub := range s.subs {
		if sub.path == changedPath || strings.HasPrefix(changedPath, sub.path+"/") {
			out = append(out, sub)
		}
	}
	return out
}

func (s *MemoryStore) deliver(subs []*memorySub) {
	for _, sub := range subs {
		s.mu.RLock()
		snap := s.snapshotLocked(sub.path)
		s.mu.RUnlock()
		sub.onSnapshot(snap)
	}
}

func (s *MemoryStore) snapshotLocked(path string) []Document {
	if IsDocumentPath(path) {
		if doc, ok := s.docs[path]; ok {
			return []Document{{Path: path, Data: copyData(doc)}}
		}
		return nil
	}
	return s.listLocked(path)
}

func (s *MemoryStore) listLocked(path string) []Document {
	prefix := path + "/"
	out := []Document{}
	for p, doc := range s.docs {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		// Direct children only, not nested subcollections.
		if strings.Contains(p[len(prefix):], "/") {
			continue
		}
		out = append(out, Document{Path: p, Data: copyData(doc)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func copyData(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
