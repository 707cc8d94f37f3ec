package player

import (
	"sync"

	"github.com/acllc88/bugleboy-radio/internal/models"
)

const defaultVolume = 0.7

// State is a snapshot of the playback session. Exactly one session exists
// per process.
type State struct {
	Station   *models.Station `json:"station,omitempty"`
	Playing   bool            `json:"playing"`
	Buffering bool            `json:"buffering"`
	Volume    float64         `json:"volume"`
	Muted     bool            `json:"muted"`
}

// Engine owns the single active audio transport and the playback state
// machine around it. Live radio streams are not seekable, so "resume" always
// re-opens the stream URL rather than unpausing a stale buffer.
type Engine struct {
	mu         sync.Mutex
	factory    TransportFactory
	transport  Transport
	generation int
	state      State
	prevVolume float64
	onChange   func(State)
}

// NewEngine creates an engine. onChange, if non-nil, is invoked with a state
// snapshot after every transition.
func NewEngine(factory TransportFactory, onChange func(State)) *Engine {
	return &Engine{
		factory:    factory,
		state:      State{Volume: defaultVolume},
		prevVolume: defaultVolume,
		onChange:   onChange,
	}
}

// State returns the current playback snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Play selects a station. Calling it with the station that is already
// playing pauses instead (toggle semantics). Selecting a different station
// releases the previous transport before a new one is created.
func (e *Engine) Play(station models.Station) {
	e.mu.Lock()

	if e.state.Station != nil && e.state.Station.ID == station.ID {
		if e.state.Playing {
			e.state.Playing = false
			t := e.transport
			e.mu.Unlock()
			if t != nil {
				t.Pause()
			}
			e.notify()
			return
		}
		// Same station, paused: re-open the stream.
		e.resumeLocked()
		return
	}

	old := e.transport
	e.generation++
	gen := e.generation

	st := station
	e.state.Station = &st
	e.state.Playing = false
	e.state.Buffering = true

	// Old transport is fully released before the replacement exists.
	if old != nil {
		e.transport = nil
		e.mu.Unlock()
		old.Stop()
		e.mu.Lock()
	}

	t := e.factory(func(ev TransportEvent) { e.handleEvent(gen, ev) })
	e.transport = t
	vol := e.effectiveVolumeLocked()
	url := station.StreamURL
	e.mu.Unlock()

	t.SetVolume(vol)
	t.Load(url)
	e.notify()
}

// TogglePlay pauses when playing and resumes when paused. With no station
// selected it is a no-op.
func (e *Engine) TogglePlay() {
	e.mu.Lock()
	if e.state.Station == nil || e.transport == nil {
		e.mu.Unlock()
		return
	}

	if e.state.Playing {
		e.state.Playing = false
		t := e.transport
		e.mu.Unlock()
		t.Pause()
		e.notify()
		return
	}

	e.resumeLocked()
}

// resumeLocked re-binds the stream URL and begins loading. Called with the
// lock held; releases it.
func (e *Engine) resumeLocked() {
	if e.transport == nil {
		e.generation++
		gen := e.generation
		e.transport = e.factory(func(ev TransportEvent) { e.handleEvent(gen, ev) })
	}
	e.state.Buffering = true
	t := e.transport
	vol := e.effectiveVolumeLocked()
	url := e.state.Station.StreamURL
	e.mu.Unlock()

	t.SetVolume(vol)
	t.Load(url)
	e.notify()
}

// SetVolume clamps v to [0,1]. Raising the volume while muted un-mutes.
func (e *Engine) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	e.mu.Lock()
	e.state.Volume = v
	if e.state.Muted && v > 0 {
		e.state.Muted = false
	}
	t := e.transport
	vol := e.effectiveVolumeLocked()
	e.mu.Unlock()

	if t != nil {
		t.SetVolume(vol)
	}
	e.notify()
}

// ToggleMute silences the transport, remembering the pre-mute volume so
// un-muting restores it.
func (e *Engine) ToggleMute() {
	e.mu.Lock()
	if e.state.Muted {
		e.state.Volume = e.prevVolume
		e.state.Muted = false
	} else {
		e.prevVolume = e.state.Volume
		e.state.Muted = true
	}
	t := e.transport
	vol := e.effectiveVolumeLocked()
	e.mu.Unlock()

	if t != nil {
		t.SetVolume(vol)
	}
	e.notify()
}

// Close stops and releases the active transport.
func (e *Engine) Close() {
	e.mu.Lock()
	t := e.transport
	e.transport = nil
	e.generation++
	e.state.Playing = false
	e.state.Buffering = false
	e.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	e.notify()
}

func (e *Engine) handleEvent(gen int, ev TransportEvent) {
	e.mu.Lock()
	if gen != e.generation {
		// Event from a transport that has already been released.
		e.mu.Unlock()
		return
	}

	var play Transport
	switch ev {
	case TransportReady:
		e.state.Buffering = false
		e.state.Playing = true
		play = e.transport
	case TransportPlaying:
		e.state.Playing = true
		e.state.Buffering = false
	case TransportPaused:
		e.state.Playing = false
	case TransportBuffering:
		e.state.Buffering = true
	case TransportError:
		// Unreachable streams are an expected condition; swallow the error
		// and settle in a non-playing idle state. Recovery is a manual
		// replay via the toggle.
		e.state.Buffering = false
		e.state.Playing = false
	}
	e.mu.Unlock()

	if play != nil {
		play.Play()
	}
	e.notify()
}

func (e *Engine) effectiveVolumeLocked() float64 {
	if e.state.Muted {
		return 0
	}
	return e.state.Volume
}

func (e *Engine) notify() {
	if e.onChange == nil {
		return
	}
	e.mu.Lock()
	snap := e.state
	e.mu.Unlock()
	e.onChange(snap)
}
