package game

import "github.com/tomz197/pong/internal/object"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height float64
	Player        object.Paddle
	CPU           object.Paddle
	Ball          object.Ball
	Scores        Scores
	WinningScore  int
	State         RoundState
	Winner        Side // Only meaningful in StateWon
	Message       string
	Difficulty    Difficulty
	PaddleSize    PaddleSize
	SoundEnabled  bool
	Tick          uint64
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:        g.bounds.Width,
		Height:       g.bounds.Height,
		Player:       *g.player,
		CPU:          *g.cpu,
		Ball:         *g.ball,
		Scores:       g.scores,
		WinningScore: g.cfg.WinningScore,
		State:        g.state,
		Winner:       g.winner,
		Message:      g.message,
		Difficulty:   g.difficulty,
		PaddleSize:   g.paddleSize,
		SoundEnabled: g.sink.Enabled(),
		Tick:         g.ticks,
	}
}

// Drawables returns the entities in draw order.
func (s Snapshot) Drawables() []object.Drawable {
	return []object.Drawable{s.Player, s.CPU, s.Ball}
}
