package game

// Side identifies a paddle. Left is the human player, Right is the CPU.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "cpu"
	}
	return "player"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Right {
		return Left
	}
	return Right
}

// EventKind identifies a notification emitted by the simulation.
type EventKind int

const (
	EventPaddleHit  EventKind = iota // Ball deflected off a paddle
	EventWallHit                     // Ball bounced off the top or bottom edge
	EventScored                      // Side scored a point
	EventRoundEnded                  // Side reached the winning score
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallHit:
		return "wall_hit"
	case EventScored:
		return "scored"
	case EventRoundEnded:
		return "round_ended"
	default:
		return "unknown"
	}
}

// Event is a discrete notification. Side is set for EventScored (the scorer)
// and EventRoundEnded (the winner).
type Event struct {
	Kind EventKind
	Side Side
}

// HumanWon reports whether a round-ended event was won by the human player.
func (e Event) HumanWon() bool {
	return e.Kind == EventRoundEnded && e.Side == Left
}

// Sink receives simulation events. It owns the enabled flag; the simulation
// fires events unconditionally and never waits on the sink.
type Sink interface {
	Notify(ev Event)
	// ToggleEnabled flips the enabled flag and returns the new value.
	ToggleEnabled() bool
	Enabled() bool
}

// silentSink drops every event.
type silentSink struct {
	enabled bool
}

func (s *silentSink) Notify(Event) {}

func (s *silentSink) ToggleEnabled() bool {
	s.enabled = !s.enabled
	return s.enabled
}

func (s *silentSink) Enabled() bool { return s.enabled }
