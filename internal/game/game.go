// Package game implements the Pong simulation: paddles, ball, scoring and
// the round state machine. A Game is driven by one goroutine that queues
// commands with Send and advances the simulation with Tick once per frame.
package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/object"
)

// Paddle colors.
var (
	PlayerColor = draw.RGB(0x4CAF50)
	CPUColor    = draw.RGB(0x2196F3)
)

// Game owns both paddles, the ball, the scores and the round state.
// It is not safe for concurrent use.
type Game struct {
	cfg    Config
	bounds object.Bounds

	player *object.Paddle // Left, human-controlled
	cpu    *object.Paddle // Right, computer-controlled
	ball   *object.Ball

	scores     Scores
	state      RoundState
	winner     Side
	message    string
	difficulty Difficulty
	paddleSize PaddleSize

	upHeld   bool
	downHeld bool
	queue    []Command

	sink   Sink
	rng    *rand.Rand
	logger *log.Logger
	ticks  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithSink routes simulation events to s.
func WithSink(s Sink) Option {
	return func(g *Game) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithRand sets the random source used for serves and zero-angle deflections.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a deterministic random source. Each game built with the
// option gets its own source, so one option may be shared between games.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the logger used for round transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in the Idle state with the ball served from the center.
// It fails when cfg has a non-positive surface or physics value.
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		bounds:     cfg.Bounds(),
		difficulty: cfg.Difficulty,
		paddleSize: cfg.PaddleSize,
		sink:       &silentSink{enabled: true},
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = object.NewPaddle(0, cfg.PaddleWidth,
		cfg.BasePaddleHeight*g.paddleSize.HeightFactor(), cfg.PaddleSpeed, g.bounds, PlayerColor)
	g.cpu = object.NewPaddle(cfg.Width-cfg.PaddleWidth, cfg.PaddleWidth,
		cfg.BasePaddleHeight, g.difficulty.CPUSpeed(), g.bounds, CPUColor)
	g.ball = object.NewBall(g.bounds.CenterX(), g.bounds.CenterY(), cfg.BallSize, cfg.BallSpeed)

	g.serve()
	return g, nil
}

// Send queues a command for the next Tick.
func (g *Game) Send(cmd Command) {
	g.queue = append(g.queue, cmd)
}

// Tick applies queued commands and, while running, advances the simulation
// by one frame.
func (g *Game) Tick() {
	g.drainCommands()
	if g.state != StateRunning {
		return
	}
	g.ticks++
	g.step()
}

// step runs one frame of the simulation: paddles, ball, scoring, then
// paddle collisions. Paddle collisions run after a point too; a served
// ball is centered so only a ball frozen by the winning point can hit.
func (g *Game) step() {
	if g.upHeld {
		g.player.MoveUp(g.bounds)
	}
	if g.downHeld {
		g.player.MoveDown(g.bounds)
	}
	g.trackBall()

	if g.ball.Move(g.bounds) {
		g.notify(Event{Kind: EventWallHit})
	}

	g.checkScore()

	g.checkPaddle(g.player, Left)
	g.checkPaddle(g.cpu, Right)
}

func (g *Game) drainCommands() {
	for i, cmd := range g.queue {
		g.apply(cmd)
		g.queue[i] = Command{}
	}
	g.queue = g.queue[:0]
}

func (g *Game) apply(cmd Command) {
	switch cmd.Kind {
	case CmdPressUp:
		g.upHeld = true
	case CmdReleaseUp:
		g.upHeld = false
	case CmdPressDown:
		g.downHeld = true
	case CmdReleaseDown:
		g.downHeld = false
	case CmdToggleRun:
		g.ToggleRun()
	case CmdRestart:
		g.Restart()
	case CmdToggleSound:
		g.ToggleSound()
	case CmdSetDifficulty:
		g.ApplyDifficulty(cmd.Difficulty)
	case CmdSetPaddleSize:
		g.ApplyPaddleSize(cmd.PaddleSize)
	default:
		g.logger.Warn("unknown command", "kind", cmd.Kind)
	}
}

// ToggleRun starts or resumes an idle or paused round and pauses a running
// one. A finished round is restarted first.
func (g *Game) ToggleRun() {
	if g.state == StateRunning {
		g.setState(StatePaused, MessagePaused)
		return
	}
	if g.state == StateWon || g.scores.Player >= g.cfg.WinningScore || g.scores.CPU >= g.cfg.WinningScore {
		g.Restart()
	}
	g.setState(StateRunning, "")
}

// Restart zeroes both scores and serves a fresh round.
func (g *Game) Restart() {
	g.scores = Scores{}
	g.resetPositions()
	g.setState(StateIdle, MessageServe)
}

// ToggleSound flips the sink's enabled flag and returns the new value.
func (g *Game) ToggleSound() bool {
	enabled := g.sink.ToggleEnabled()
	g.logger.Debug("sound toggled", "enabled", enabled)
	return enabled
}

// ApplyDifficulty sets the CPU paddle speed. The round is not reset.
func (g *Game) ApplyDifficulty(d Difficulty) {
	g.difficulty = d
	g.cpu.Speed = d.CPUSpeed()
	g.logger.Debug("difficulty changed", "difficulty", d, "speed", g.cpu.Speed)
}

// ApplyPaddleSize resizes the human paddle and resets ball and paddles.
// Scores are kept, and a finished round stays finished.
func (g *Game) ApplyPaddleSize(s PaddleSize) {
	g.paddleSize = s
	g.player.Height = g.cfg.BasePaddleHeight * s.HeightFactor()
	g.player.SetVerticalCenter(g.bounds)
	g.logger.Debug("paddle size changed", "size", s, "height", g.player.Height)

	if g.state == StateWon {
		g.resetPositions()
		return
	}
	g.serve()
}

// serve resets ball and paddles and waits for the player to resume.
func (g *Game) serve() {
	g.resetPositions()
	g.setState(StateIdle, MessageServe)
}

func (g *Game) resetPositions() {
	g.ball.ResetToCenter(g.bounds, g.rng)
	g.player.SetVerticalCenter(g.bounds)
	g.cpu.SetVerticalCenter(g.bounds)
}

func (g *Game) setState(s RoundState, message string) {
	if s != g.state {
		g.logger.Debug("round state", "from", g.state, "to", s,
			"player", g.scores.Player, "cpu", g.scores.CPU)
	}
	g.state = s
	g.message = message
}

func (g *Game) notify(ev Event) {
	g.sink.Notify(ev)
}

// State returns the current round state.
func (g *Game) State() RoundState { return g.state }

// Scores returns both scores.
func (g *Game) Scores() Scores { return g.scores }

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }
