// Package bell rings the terminal bell for game events. It writes into the
// session's output and needs no audio device.
package bell

import (
	"io"

	"github.com/tomz197/pong/internal/game"
)

// bel is the terminal bell control character.
const bel = "\a"

// Bell rings the terminal bell for scores and finished rounds. It is the
// sink for remote sessions, where the server has no speaker to play on.
// It is not safe for concurrent use; the game calls Notify on the frame
// goroutine, which also owns w.
type Bell struct {
	w       io.Writer
	enabled bool
}

var _ game.Sink = (*Bell)(nil)

// New creates a bell writing to w.
func New(w io.Writer, enabled bool) *Bell {
	return &Bell{w: w, enabled: enabled}
}

// Notify writes a bell for scores and round ends.
func (b *Bell) Notify(ev game.Event) {
	if !b.enabled {
		return
	}
	switch ev.Kind {
	case game.EventScored, game.EventRoundEnded:
		_, _ = io.WriteString(b.w, bel)
	}
}

// ToggleEnabled flips the enabled flag and returns the new value.
func (b *Bell) ToggleEnabled() bool {
	b.enabled = !b.enabled
	return b.enabled
}

// Enabled reports whether the bell rings.
func (b *Bell) Enabled() bool { return b.enabled }
