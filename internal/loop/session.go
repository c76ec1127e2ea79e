package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/hub"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/sound/bell"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Config       *game.Config  // Defaults to game.DefaultConfig
	GameOptions  []game.Option // Extra options, e.g. game.WithSeed
	Sink         game.Sink     // Event sink; see Bell
	Bell         bool          // Ring the terminal bell when Sink is nil
	Mute         bool          // Start the bell disabled
	Hub          *hub.Hub      // Server-wide notices; nil for local play
	Inactivity   bool          // Warn and disconnect idle sessions
	Logger       *log.Logger
}

// Session runs one game for one terminal: it reads keys, advances the game
// and renders frames.
type Session struct {
	game         *game.Game
	state        *SessionState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	hub          *hub.Hub
	handle       *hub.Handle
	hud          *hudStyles
	username     string
	inactivity   bool
	logger       *log.Logger
}

// NewSession creates a session reading from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := game.DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, cfg.Width, cfg.Height)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, cfg.Width, cfg.Height)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	sink := opts.Sink
	if sink == nil && opts.Bell {
		sink = bell.New(chunkWriter, !opts.Mute)
	}

	gameOpts := []game.Option{game.WithLogger(logger)}
	if sink != nil {
		gameOpts = append(gameOpts, game.WithSink(sink))
	}
	gameOpts = append(gameOpts, opts.GameOptions...)

	g, err := game.New(cfg, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	renderer := lipgloss.NewRenderer(chunkWriter)
	renderer.SetColorProfile(termenv.TrueColor)

	s := &Session{
		game:         g,
		state:        NewSessionState(time.Now()),
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		hub:          opts.Hub,
		hud:          newHUDStyles(renderer),
		username:     opts.Username,
		inactivity:   opts.Inactivity,
		logger:       logger,
	}
	if s.hub != nil {
		s.handle = s.hub.Register(opts.Username)
	}
	return s, nil
}

// Game returns the session's game.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run starts the session loop with the standard Input → Update → Draw cycle.
// It blocks until the player quits, the session times out, the server shuts
// down or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if s.handle != nil {
		defer s.hub.Unregister(s.handle.ID)
	}

	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	lastTime := time.Now()

	for s.state.Running {
		select {
		case <-ctx.Done():
			s.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		s.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		s.processInput(input.ReadInput(s.inputStream), frameStart)
		s.processHubEvents()

		// ===== UPDATE PHASE =====
		s.updateScreen()
		s.update()

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < TargetFrameTime {
			time.Sleep(TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// processInput records the frame's input, tracks inactivity and forwards
// commands to the game.
func (s *Session) processInput(in input.Input, now time.Time) {
	s.state.Input = in

	if len(in.Pressed) > 0 {
		s.state.lastInput = now
		s.state.isInactive = false
	} else if s.inactivity {
		idle := now.Sub(s.state.lastInput).Seconds()
		switch {
		case idle > InactivityDisconnectUser:
			s.logger.Info("disconnecting idle session", "user", s.username)
			s.state.Running = false
		case idle > InactivityWarnUser && !s.state.isInactive:
			s.state.isInactive = true
			if s.game.State() == game.StateRunning {
				s.game.Send(game.ToggleRunOrRestart)
			}
		}
	}

	if in.Quit {
		s.state.Running = false
	}

	if s.state.Screen != ScreenPlaying {
		return
	}
	for _, cmd := range translate(in, &s.state.held) {
		s.game.Send(cmd)
	}
}

// processHubEvents handles notices from the hub.
func (s *Session) processHubEvents() {
	if s.handle == nil {
		return
	}
	for {
		select {
		case event := <-s.handle.Events:
			switch event.Type {
			case hub.EventServerShutdown:
				s.state.Screen = ScreenShutdown
				s.state.shutdownTimer = ShutdownDisplaySeconds
			case hub.EventAnnouncement:
				s.state.announcement = event.Text
				s.state.announceTimer = AnnouncementSeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize. On actual size changes the terminal
// is cleared to remove residual output outside the new render area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.termSizeFunc)
	if err != nil {
		return
	}
	cfg := s.game.Config()
	renderWidth, renderHeight, offsetCol, offsetRow := fitTermSize(termWidth, termHeight, cfg.Width, cfg.Height)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.chunkWriter.WriteString("\033[H\033[2J")
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// update advances the game and the session timers.
func (s *Session) update() {
	dt := s.state.delta.Seconds()

	if s.state.announceTimer > 0 {
		s.state.announceTimer -= dt
		if s.state.announceTimer <= 0 {
			s.state.announcement = ""
		}
	}

	switch s.state.Screen {
	case ScreenPlaying:
		s.game.Tick()
		s.checkRoundEnd()
	case ScreenShutdown:
		s.state.shutdownTimer -= dt
		if s.state.shutdownTimer <= 0 {
			s.state.Running = false
		}
	}
}

// checkRoundEnd logs a finished round once and tells the other sessions.
func (s *Session) checkRoundEnd() {
	round := s.game.State()
	defer func() { s.state.prevRound = round }()

	if round != game.StateWon || s.state.prevRound == game.StateWon {
		return
	}
	scores := s.game.Scores()
	s.logger.Info("game over", "user", s.username, "player", scores.Player, "cpu", scores.CPU)

	if s.handle == nil || s.username == "" {
		return
	}
	verb := "lost to"
	if scores.Player > scores.CPU {
		verb = "beat"
	}
	s.hub.Announce(s.handle.ID, fmt.Sprintf("%s %s the CPU %d-%d", s.username, verb, scores.Player, scores.CPU))
}
