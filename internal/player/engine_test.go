package player

import (
	"sync"
	"testing"

	"github.com/acllc88/bugleboy-radio/internal/models"
)

// fakeTransport records calls and lets tests drive events synchronously.
type fakeTransport struct {
	mu      sync.Mutex
	onEvent func(TransportEvent)
	calls   []string
	loaded  string
	volume  float64
	stopped bool
}

func (f *fakeTransport) Load(url string) {
	f.mu.Lock()
	f.calls = append(f.calls, "load")
	f.loaded = url
	f.mu.Unlock()
}

func (f *fakeTransport) Play() {
	f.mu.Lock()
	f.calls = append(f.calls, "play")
	f.mu.Unlock()
}

func (f *fakeTransport) Pause() {
	f.mu.Lock()
	f.calls = append(f.calls, "pause")
	f.mu.Unlock()
}

func (f *fakeTransport) Stop() {
	f.mu.Lock()
	f.calls = append(f.calls, "stop")
	f.stopped = true
	f.mu.Unlock()
}

func (f *fakeTransport) SetVolume(v float64) {
	f.mu.Lock()
	f.volume = v
	f.mu.Unlock()
}

func (f *fakeTransport) emit(ev TransportEvent) {
	f.onEvent(ev)
}

type fakeFactory struct {
	mu      sync.Mutex
	created []*fakeTransport
}

func (ff *fakeFactory) new(onEvent func(TransportEvent)) Transport {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	t := &fakeTransport{onEvent: onEvent}
	ff.created = append(ff.created, t)
	return t
}

func (ff *fakeFactory) last() *fakeTransport {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return ff.created[len(ff.created)-1]
}

var (
	stationA = models.Station{ID: "a", Name: "Station A", StreamURL: "http://a.example/stream"}
	stationB = models.Station{ID: "b", Name: "Station B", StreamURL: "http://b.example/stream"}
)

func TestEngine_PlayStartsBufferingThenPlaying(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)

	st := e.State()
	if !st.Buffering || st.Playing {
		t.Fatalf("expected buffering and not playing after Play, got %+v", st)
	}
	if ff.last().loaded != stationA.StreamURL {
		t.Errorf("expected stream URL bound, got %q", ff.last().loaded)
	}

	ff.last().emit(TransportReady)

	st = e.State()
	if st.Buffering || !st.Playing {
		t.Fatalf("expected playing after ready, got %+v", st)
	}
}

func TestEngine_PlaySameStationToggles(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	ff.last().emit(TransportReady)
	if !e.State().Playing {
		t.Fatal("expected playing")
	}

	// Same station while playing pauses.
	e.Play(stationA)
	if e.State().Playing {
		t.Fatal("expected paused after second Play")
	}
	if len(ff.created) != 1 {
		t.Fatalf("toggle must reuse the transport, created %d", len(ff.created))
	}

	// Same station while paused re-opens the stream.
	e.Play(stationA)
	if !e.State().Buffering {
		t.Fatal("expected buffering during resume")
	}
	ff.last().emit(TransportReady)
	if !e.State().Playing {
		t.Fatal("expected playing after resume")
	}
}

func TestEngine_SwitchStationReleasesOldTransportFirst(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	first := ff.last()
	first.emit(TransportReady)

	e.Play(stationB)

	first.mu.Lock()
	stopped := first.stopped
	first.mu.Unlock()
	if !stopped {
		t.Fatal("expected old transport to be stopped on station switch")
	}
	if len(ff.created) != 2 {
		t.Fatalf("expected exactly one new transport, created %d", len(ff.created))
	}
	second := ff.last()
	if second.loaded != stationB.StreamURL {
		t.Errorf("expected new station URL, got %q", second.loaded)
	}
	if st := e.State(); st.Station == nil || st.Station.ID != "b" {
		t.Errorf("expected station b selected, got %+v", st.Station)
	}
}

func TestEngine_EventsFromReleasedTransportIgnored(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	old := ff.last()
	e.Play(stationB)

	// A late event from the released transport must not disturb the session.
	old.emit(TransportError)
	if st := e.State(); !st.Buffering {
		t.Errorf("stale transport event changed state: %+v", st)
	}
}

func TestEngine_TransportErrorSettlesIdle(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	ff.last().emit(TransportError)

	st := e.State()
	if st.Playing || st.Buffering {
		t.Fatalf("expected idle state after error, got %+v", st)
	}

	// Manual replay via toggle is the recovery path.
	e.TogglePlay()
	if !e.State().Buffering {
		t.Fatal("expected replay to start buffering")
	}
}

func TestEngine_TogglePlayWithoutStationIsNoop(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.TogglePlay()
	if len(ff.created) != 0 {
		t.Fatal("expected no transport without a station")
	}
}

func TestEngine_TogglePlayResumesByRebindingURL(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	tr := ff.last()
	tr.emit(TransportReady)

	e.TogglePlay()
	if e.State().Playing {
		t.Fatal("expected paused")
	}

	tr.mu.Lock()
	tr.loaded = ""
	tr.mu.Unlock()

	e.TogglePlay()

	tr.mu.Lock()
	reloaded := tr.loaded
	tr.mu.Unlock()
	if reloaded != stationA.StreamURL {
		t.Errorf("resume must re-bind the stream URL, got %q", reloaded)
	}
}

func TestEngine_SetVolumeClampsAndUnmutes(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.SetVolume(1.7)
	if v := e.State().Volume; v != 1 {
		t.Errorf("expected clamp to 1, got %v", v)
	}
	e.SetVolume(-0.5)
	if v := e.State().Volume; v != 0 {
		t.Errorf("expected clamp to 0, got %v", v)
	}

	// Mute at 0.8, then set 0.3: mute clears and volume is 0.3.
	e.SetVolume(0.8)
	e.ToggleMute()
	e.SetVolume(0.3)

	st := e.State()
	if st.Muted {
		t.Error("expected setting volume to clear mute")
	}
	if st.Volume != 0.3 {
		t.Errorf("expected volume 0.3, got %v", st.Volume)
	}
}

func TestEngine_ToggleMuteRestoresPreviousVolume(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	e.SetVolume(0.8)

	e.ToggleMute()
	st := e.State()
	if !st.Muted {
		t.Fatal("expected muted")
	}
	if got := ff.last().volume; got != 0 {
		t.Errorf("expected effective volume 0 while muted, got %v", got)
	}

	e.ToggleMute()
	st = e.State()
	if st.Muted || st.Volume != 0.8 {
		t.Errorf("expected unmuted at 0.8, got %+v", st)
	}
	if got := ff.last().volume; got != 0.8 {
		t.Errorf("expected effective volume restored, got %v", got)
	}
}

func TestEngine_CloseReleasesTransport(t *testing.T) {
	ff := &fakeFactory{}
	e := NewEngine(ff.new, nil)

	e.Play(stationA)
	e.Close()

	if !ff.last().stopped {
		t.Fatal("expected transport released on close")
	}
	if st := e.State(); st.Playing || st.Buffering {
		t.Errorf("expected idle after close, got %+v", st)
	}
}
