package loop

import (
	"time"

	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/input"
)

// Screen is the session-level phase, layered over the game's own round state.
type Screen int

const (
	ScreenPlaying  Screen = iota // Field, HUD and round messages
	ScreenShutdown               // Server is shutting down
)

// SessionState holds per-connection state that is not part of the game:
// input edges, inactivity tracking and server notices.
type SessionState struct {
	Input         input.Input
	Screen        Screen
	Running       bool      // Session loop running
	held          heldKeys  // Movement keys held last frame
	lastInput     time.Time // Time of the last key byte
	isInactive    bool      // Whether the inactivity warning is shown
	shutdownTimer float64   // Countdown before auto-disconnect on shutdown
	announcement  string    // Latest message from another session
	announceTimer float64   // Seconds the announcement stays visible
	prevRound     game.RoundState
	delta         time.Duration // Frame delta time
}

// NewSessionState creates a running session state.
func NewSessionState(now time.Time) *SessionState {
	return &SessionState{
		Screen:    ScreenPlaying,
		Running:   true,
		lastInput: now,
	}
}
