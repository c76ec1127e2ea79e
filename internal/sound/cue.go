// Package sound synthesizes the tones played for game events.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/tomz197/pong/internal/game"
)

// Note lengths at 120 bpm.
const (
	Eighth  = 250 * time.Millisecond
	Quarter = 500 * time.Millisecond
	Whole   = 2 * time.Second
)

const (
	attack        = 5 * time.Millisecond
	releaseFactor = 3 // Release is 1/releaseFactor of the note length
)

// Cue is the note played for an event.
type Cue struct {
	Note     int
	Duration time.Duration
}

// CueFor returns the cue for ev.
func CueFor(ev game.Event) (Cue, bool) {
	switch ev.Kind {
	case game.EventPaddleHit:
		return Cue{Note: NoteE5, Duration: Eighth}, true
	case game.EventWallHit:
		return Cue{Note: NoteC5, Duration: Eighth}, true
	case game.EventScored:
		if ev.Side == game.Left {
			return Cue{Note: NoteC4, Duration: Quarter}, true
		}
		return Cue{Note: NoteG4, Duration: Quarter}, true
	case game.EventRoundEnded:
		if ev.HumanWon() {
			return Cue{Note: NoteC6, Duration: Whole}, true
		}
		return Cue{Note: NoteG3, Duration: Whole}, true
	}
	return Cue{}, false
}

// Voice renders c as a triangle tone with a short attack and a soft release.
func Voice(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(NoteFreq(c.Note), c.Duration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, c.Duration, attack, c.Duration/releaseFactor, rate)
	return newVolume(shaped, volume)
}
