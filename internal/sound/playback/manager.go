// Package playback plays game cues on the local audio device. It links the
// platform audio driver, so only local frontends import it.
package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/sound"
)

const (
	sampleRate    = beep.SampleRate(48000)
	bufferLength  = 100 * time.Millisecond
	DefaultVolume = 0.3
)

// Manager plays a cue for every game event on the local speaker.
// Events are dropped until Start succeeds and while disabled.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	enabled     bool
}

var _ game.Sink = (*Manager)(nil)

// NewManager creates a manager. Nothing plays until Start is called.
func NewManager(enabled bool) *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		volume:  DefaultVolume,
		enabled: enabled,
	}
}

// Start opens the speaker. Calling it again after success is a no-op.
// It may block while the audio device starts, so frontends call it off the
// frame goroutine.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// Ready reports whether the speaker is open.
func (m *Manager) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Notify queues the cue for ev. It never blocks on audio output.
func (m *Manager) Notify(ev game.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.enabled {
		return
	}
	cue, ok := sound.CueFor(ev)
	if !ok {
		return
	}
	voice := sound.Voice(cue, sampleRate, m.volume)

	speaker.Lock()
	m.mixer.Add(voice)
	speaker.Unlock()
}

// ToggleEnabled flips the enabled flag and returns the new value.
func (m *Manager) ToggleEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = !m.enabled
	return m.enabled
}

// Enabled reports whether events are played.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}
