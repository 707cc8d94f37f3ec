package player

// TransportEvent is an asynchronous signal from an audio transport.
type TransportEvent int

const (
	// TransportReady fires when enough of the stream is buffered to start.
	TransportReady TransportEvent = iota
	// TransportPlaying fires when audio is actually flowing.
	TransportPlaying
	// TransportPaused fires when playback stops without releasing.
	TransportPaused
	// TransportBuffering fires when playback stalls waiting for data.
	TransportBuffering
	// TransportError fires when the stream cannot be loaded or played.
	TransportError
)

// Transport is one bound audio resource. Load is asynchronous; progress is
// reported through the event callback the transport was created with.
// Stop releases the underlying connection; no calls are valid after Stop.
type Transport interface {
	Load(url string)
	Play()
	Pause()
	Stop()
	SetVolume(v float64)
}

// TransportFactory creates a transport wired to an event callback. The
// engine creates at most one live transport at a time.
type TransportFactory func(onEvent func(TransportEvent)) Transport
