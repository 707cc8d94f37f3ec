package player

import "sync"

// Relay is a TransportFactory wrapper that keeps a handle on the most
// recently created HTTP transport so the stream endpoint can attach
// listeners to whatever is currently playing.
type Relay struct {
	mu      sync.Mutex
	current *HTTPTransport
}

func NewRelay() *Relay {
	return &Relay{}
}

// Factory returns the TransportFactory the engine should use.
func (r *Relay) Factory() TransportFactory {
	return func(onEvent func(TransportEvent)) Transport {
		t := NewHTTPTransport(onEvent).(*HTTPTransport)
		r.mu.Lock()
		r.current = t
		r.mu.Unlock()
		return t
	}
}

// Listen attaches to the live transport's audio feed. ok is false when
// nothing is bound.
func (r *Relay) Listen() (ch <-chan []byte, cancel func(), contentType string, ok bool) {
	r.mu.Lock()
	t := r.current
	r.mu.Unlock()

	if t == nil {
		return nil, nil, "", false
	}
	ch, cancel = t.Listen()
	return ch, cancel, t.ContentType(), true
}
