package game

// RoundState is the phase of the current round.
type RoundState int

const (
	StateIdle    RoundState = iota // Waiting for the serve
	StateRunning                   // Simulation advancing
	StatePaused                    // Stopped by the player
	StateWon                       // A side reached the winning score
)

func (s RoundState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Messages shown by the renderer for each state.
const (
	MessageServe  = "Press SPACE to start"
	MessagePaused = "Paused - press SPACE to resume"
	MessageWin    = "You win! Press SPACE to restart"
	MessageLoss   = "CPU wins! Press SPACE to restart"
)

// Scores holds the points of both sides.
type Scores struct {
	Player int
	CPU    int
}

// Of returns the score of side.
func (s Scores) Of(side Side) int {
	if side == Right {
		return s.CPU
	}
	return s.Player
}

func (s *Scores) add(side Side) int {
	if side == Right {
		s.CPU++
		return s.CPU
	}
	s.Player++
	return s.Player
}
