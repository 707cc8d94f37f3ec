package player

import (
	"context"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

const (
	streamChunkSize   = 8192
	listenerQueueSize = 64
)

// HTTPTransport binds to an internet radio stream URL over HTTP and relays
// the raw audio bytes to attached listeners (the local UI fetches them from
// the daemon's stream endpoint). Live streams are not seekable: Pause tears
// the connection down and the engine re-binds the URL to resume.
type HTTPTransport struct {
	onEvent func(TransportEvent)
	client  *http.Client

	mu          sync.Mutex
	cancel      context.CancelFunc
	stopped     bool
	volume      float64
	contentType string
	listeners   map[int]chan []byte
	nextID      int
}

// NewHTTPTransport is a TransportFactory.
func NewHTTPTransport(onEvent func(TransportEvent)) Transport {
	return &HTTPTransport{
		onEvent: onEvent,
		client: &http.Client{
			// Connect timeout only; the body is an endless live stream.
			Timeout: 0,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 15 * time.Second,
			},
		},
		volume:    defaultVolume,
		listeners: make(map[int]chan []byte),
	}
}

func (t *HTTPTransport) Load(url string) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.mu.Unlock()

	go t.fetch(ctx, url)
}

func (t *HTTPTransport) Play() {
	t.emit(TransportPlaying)
}

func (t *HTTPTransport) Pause() {
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()
	t.emit(TransportPaused)
}

func (t *HTTPTransport) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	for id, ch := range t.listeners {
		close(ch)
		delete(t.listeners, id)
	}
	t.mu.Unlock()
}

func (t *HTTPTransport) SetVolume(v float64) {
	t.mu.Lock()
	t.volume = v
	t.mu.Unlock()
}

// ContentType reports the MIME type of the bound stream, once known.
func (t *HTTPTransport) ContentType() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.contentType
}

// Listen attaches a listener that receives raw audio chunks. Slow listeners
// drop chunks rather than stalling the fetch loop.
func (t *HTTPTransport) Listen() (<-chan []byte, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan []byte, listenerQueueSize)
	if t.stopped {
		close(ch)
		return ch, func() {}
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = ch

	return ch, func() {
		t.mu.Lock()
		if c, ok := t.listeners[id]; ok {
			delete(t.listeners, id)
			close(c)
		}
		t.mu.Unlock()
	}
}

func (t *HTTPTransport) fetch(ctx context.Context, url string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		t.emit(TransportError)
		return
	}
	req.Header.Set("Icy-MetaData", "0")

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("Stream connect failed: %v", err)
			t.emit(TransportError)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Stream returned status %d", resp.StatusCode)
		t.emit(TransportError)
		return
	}

	t.mu.Lock()
	t.contentType = resp.Header.Get("Content-Type")
	t.mu.Unlock()

	t.emit(TransportReady)

	buf := make([]byte, streamChunkSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			t.broadcast(chunk)
		}
		if err != nil {
			if ctx.Err() != nil || err == io.EOF {
				return
			}
			log.Printf("Stream read failed: %v", err)
			t.emit(TransportError)
			return
		}
	}
}

func (t *HTTPTransport) broadcast(chunk []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ch := range t.listeners {
		select {
		case ch <- chunk:
		default:
			// Listener is falling behind; drop the chunk.
		}
	}
}

func (t *HTTPTransport) emit(ev TransportEvent) {
	t.mu.Lock()
	stopped := t.stopped
	t.mu.Unlock()
	if stopped || t.onEvent == nil {
		return
	}
	t.onEvent(ev)
}
