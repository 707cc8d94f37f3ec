package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	docKeyPrefix  = "doc:"
	changeChannel = "store:changes"
)

// RedisStore implements Store on Redis. Documents are JSON values under
// doc:<path> keys; every write publishes the changed path on a shared
// pub/sub channel and each subscriber re-reads its full snapshot, which
// gives the level-triggered full-state-replace semantics subscribers
// expect.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context

	mu     sync.Mutex
	subs   map[int]*redisSub
	nextID int
	pubsub *redis.PubSub
	done   chan struct{}
}

type redisSub struct {
	path       string
	onSnapshot func([]Document)
	onError    func(error)
}

// NewRedisStore creates a Redis-backed store and verifies the connection.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := &RedisStore{
		client: client,
		ctx:    ctx,
		subs:   make(map[int]*redisSub),
		done:   make(chan struct{}),
	}

	s.pubsub = client.Subscribe(ctx, changeChannel)
	go s.dispatchChanges()

	return s, nil
}

// Close cancels the change listener and closes the connection.
func (s *RedisStore) Close() error {
	close(s.done)
	s.pubsub.Close()
	return s.client.Close()
}

func (s *RedisStore) GetDocument(ctx context.Context, path string) (map[string]any, error) {
	raw, err := s.client.Get(ctx, docKeyPrefix+path).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", path, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", path, err)
	}
	return data, nil
}

func (s *RedisStore) SetDocument(ctx context.Context, path string, data map[string]any, merge bool) error {
	resolved := resolveTimestamps(data)

	if merge {
		existing, err := s.GetDocument(ctx, path)
		if err != nil && err != ErrNotFound {
			return err
		}
		if existing == nil {
			existing = make(map[string]any)
		}
		for k, v := range resolved {
			existing[k] = v
		}
		resolved = existing
	}

	raw, err := json.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	if err := s.client.Set(ctx, docKeyPrefix+path, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	s.publishChange(path)
	return nil
}

func (s *RedisStore) DeleteDocument(ctx context.Context, path string) error {
	// DEL on a missing key is a no-op, which gives the idempotent delete
	// the interface promises.
	if err := s.client.Del(ctx, docKeyPrefix+path).Err(); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", path, err)
	}

	s.publishChange(path)
	return nil
}

func (s *RedisStore) ListCollection(ctx context.Context, path string) ([]Document, error) {
	prefix := docKeyPrefix + path + "/"

	var keys []string
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		// Direct children only.
		if strings.Contains(strings.TrimPrefix(key, prefix), "/") {
			continue
		}
		keys = append(keys, key)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan collection %s: %w", path, err)
	}
	sort.Strings(keys)

	out := []Document{}
	for _, key := range keys {
		docPath := strings.TrimPrefix(key, docKeyPrefix)
		data, err := s.GetDocument(ctx, docPath)
		if err == ErrNotFound {
			// Deleted between scan and read.
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, Document{Path: docPath, Data: data})
	}
	return out, nil
}

func (s *RedisStore) Subscribe(path string, onSnapshot func([]Document), onError func(error)) UnsubscribeFunc {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = &redisSub{path: path, onSnapshot: onSnapshot, onError: onError}
	s.mu.Unlock()

	// Initial snapshot.
	snap, err := s.snapshot(path)
	if err != nil {
		if onError != nil {
			onError(err)
		}
	} else {
		onSnapshot(snap)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// dispatchChanges fans published change paths out to matching subscribers.
func (s *RedisStore) dispatchChanges() {
	ch := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.notify(msg.Payload)
		}
	}
}

func (s *RedisStore) notify(changedPath string) {
	s.mu.Lock()
	var matched []*redisSub
	for _, sub := range s.subs {
		if sub.path == changedPath || strings.HasPrefix(changedPath, sub.path+"/") {
			matched = append(matched, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range matched {
		snap, err := s.snapshot(sub.path)
		if err != nil {
			if sub.onError != nil {
				sub.onError(err)
			} else {
				log.Printf("Store subscription error on %s: %v", sub.path, err)
			}
			continue
		}
		sub.onSnapshot(snap)
	}
}

func (s *RedisStore) snapshot(path string) ([]Document, error) {
	if IsDocumentPath(path) {
		data, err := s.GetDocument(s.ctx, path)
		if err == ErrNotFound {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []Document{{Path: path, Data: data}}, nil
	}
	return s.ListCollection(s.ctx, path)
}

func (s *RedisStore) publishChange(path string) {
	if err := s.client.Publish(s.ctx, changeChannel, path).Err(); err != nil {
		log.Printf("Failed to publish change for %s: %v", path, err)
	}
}

// resolveTimestamps replaces ServerTimestamp sentinels with the store-side
// clock so writers never assign their own message ordering.
func resolveTimestamps(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	now := time.Now().UnixMilli()
	for k, v := range data {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = now
			continue
		}
		out[k] = v
	}
	return out
}
