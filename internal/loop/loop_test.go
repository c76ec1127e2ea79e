package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/hub"
	"github.com/tomz197/pong/internal/input"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func newTestSession(t *testing.T, out *bytes.Buffer, opts Options) *Session {
	t.Helper()
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = fixedSize(80, 24)
	}
	opts.GameOptions = append(opts.GameOptions, game.WithSeed(7))
	s, err := NewSession(bufio.NewReader(strings.NewReader("")), out, opts)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestTranslateEdges(t *testing.T) {
	var held heldKeys

	cmds := translate(input.Input{Up: true}, &held)
	if !slices.Equal(cmds, []game.Command{game.PressUp}) {
		t.Fatalf("press up = %v", cmds)
	}
	if cmds := translate(input.Input{Up: true}, &held); len(cmds) != 0 {
		t.Fatalf("held key repeated a command: %v", cmds)
	}

	cmds = translate(input.Input{Down: true}, &held)
	if !slices.Equal(cmds, []game.Command{game.ReleaseUp, game.PressDown}) {
		t.Fatalf("switch to down = %v", cmds)
	}

	cmds = translate(input.Input{}, &held)
	if !slices.Equal(cmds, []game.Command{game.ReleaseDown}) {
		t.Fatalf("release down = %v", cmds)
	}
}

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		key  input.Key
		want game.Command
	}{
		{input.KeySpace, game.ToggleRunOrRestart},
		{input.KeyRestart, game.Restart},
		{input.KeySound, game.ToggleSound},
		{input.KeyStrong, game.SetCPUDifficulty(game.DifficultyStrong)},
		{input.KeyWeak, game.SetCPUDifficulty(game.DifficultyWeak)},
		{input.KeyNarrow, game.SetPaddleSize(game.PaddleNarrow)},
		{input.KeyNormal, game.SetPaddleSize(game.PaddleNormal)},
		{input.KeyWide, game.SetPaddleSize(game.PaddleWide)},
	}
	for _, tt := range tests {
		var held heldKeys
		cmds := translate(input.Input{Keys: []input.Key{tt.key}}, &held)
		if len(cmds) != 1 || cmds[0] != tt.want {
			t.Errorf("key %v = %v, want %v", tt.key, cmds, tt.want)
		}
	}
}

func TestFitTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		termW, termH           int
		wantW, wantH           int
		wantOffCol, wantOffRow int
	}{
		{"wide terminal", 80, 24, 64, 24, 8, 0},
		{"tall terminal", 40, 40, 40, 15, 0, 12},
		{"huge terminal", 400, 100, 160, 60, 120, 20},
		{"empty", 0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, col, row := fitTermSize(tt.termW, tt.termH, 800, 600)
			if w != tt.wantW || h != tt.wantH || col != tt.wantOffCol || row != tt.wantOffRow {
				t.Errorf("fitTermSize(%d,%d) = %d,%d,%d,%d, want %d,%d,%d,%d",
					tt.termW, tt.termH, w, h, col, row,
					tt.wantW, tt.wantH, tt.wantOffCol, tt.wantOffRow)
			}
		})
	}
}

func TestSpaceStartsAndHeldKeyMovesPaddle(t *testing.T) {
	s := newTestSession(t, &bytes.Buffer{}, Options{})
	now := time.Now()

	s.processInput(input.Input{Keys: []input.Key{input.KeySpace}, Pressed: []byte(" ")}, now)
	s.update()
	if s.game.State() != game.StateRunning {
		t.Fatalf("state = %v, want running", s.game.State())
	}

	before := s.game.Snapshot().Player.Y
	s.processInput(input.Input{Up: true, Pressed: []byte("w")}, now)
	s.update()
	if got := s.game.Snapshot().Player.Y; got != before-game.PaddleSpeed {
		t.Errorf("player y = %v, want %v", got, before-game.PaddleSpeed)
	}
}

func TestQuitStopsSession(t *testing.T) {
	s := newTestSession(t, &bytes.Buffer{}, Options{})
	s.processInput(input.Input{Quit: true}, time.Now())
	if s.state.Running {
		t.Fatalf("session still running after quit")
	}
}

func TestInactivityWarnsPausesAndDisconnects(t *testing.T) {
	s := newTestSession(t, &bytes.Buffer{}, Options{Inactivity: true})
	start := time.Now()

	s.processInput(input.Input{Keys: []input.Key{input.KeySpace}, Pressed: []byte(" ")}, start)
	s.update()

	s.processInput(input.Input{}, start.Add((InactivityWarnUser+1)*time.Second))
	s.update()
	if !s.state.isInactive {
		t.Fatalf("no inactivity warning")
	}
	if s.game.State() != game.StatePaused {
		t.Errorf("game state = %v, want paused", s.game.State())
	}

	s.processInput(input.Input{}, start.Add((InactivityDisconnectUser+1)*time.Second))
	if s.state.Running {
		t.Fatalf("idle session not disconnected")
	}
}

func TestKeyClearsInactivity(t *testing.T) {
	s := newTestSession(t, &bytes.Buffer{}, Options{Inactivity: true})
	start := time.Now()

	s.processInput(input.Input{}, start.Add((InactivityWarnUser+1)*time.Second))
	s.processInput(input.Input{Pressed: []byte("x")}, start.Add((InactivityWarnUser+2)*time.Second))
	if s.state.isInactive {
		t.Fatalf("key press did not clear the warning")
	}
}

func TestInactivityDisabledForLocalPlay(t *testing.T) {
	s := newTestSession(t, &bytes.Buffer{}, Options{})
	s.processInput(input.Input{}, time.Now().Add(time.Hour))
	if !s.state.Running || s.state.isInactive {
		t.Fatalf("local session timed out")
	}
}

func TestShutdownScreenCountsDown(t *testing.T) {
	h := hub.New()
	var out bytes.Buffer
	s := newTestSession(t, &out, Options{Hub: h, Username: "alice"})
	if h.Count() != 1 {
		t.Fatalf("session not registered")
	}

	s.handle.Events <- hub.Event{Type: hub.EventServerShutdown}
	s.processHubEvents()
	if s.state.Screen != ScreenShutdown {
		t.Fatalf("screen = %v, want shutdown", s.state.Screen)
	}

	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "SERVER SHUTTING DOWN") {
		t.Errorf("shutdown notice missing from output")
	}

	s.state.delta = (ShutdownDisplaySeconds + 1) * time.Second
	s.update()
	if s.state.Running {
		t.Fatalf("session still running after the shutdown countdown")
	}
}

func TestRoundEndAnnouncedToOtherSessions(t *testing.T) {
	h := hub.New()
	cfg := game.DefaultConfig()
	cfg.WinningScore = 1

	winner := newTestSession(t, &bytes.Buffer{}, Options{Hub: h, Username: "alice", Config: &cfg})
	watcher := newTestSession(t, &bytes.Buffer{}, Options{Hub: h, Username: "bob"})

	winner.game.Send(game.ToggleRunOrRestart)
	for i := 0; i < 100000 && winner.game.State() != game.StateWon; i++ {
		winner.update()
	}
	if winner.game.State() != game.StateWon {
		t.Fatalf("round never finished")
	}
	winner.update()

	watcher.processHubEvents()
	if !strings.HasPrefix(watcher.state.announcement, "alice ") || !strings.Contains(watcher.state.announcement, "the CPU") {
		t.Errorf("announcement = %q", watcher.state.announcement)
	}
	select {
	case ev := <-winner.handle.Events:
		t.Errorf("winner received its own announcement: %+v", ev)
	default:
	}

	watcher.state.delta = (AnnouncementSeconds + 1) * time.Second
	watcher.update()
	if watcher.state.announcement != "" {
		t.Errorf("announcement not cleared")
	}
}

func TestDrawFrameRendersHUD(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out, Options{})

	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	got := out.String()
	for _, want := range []string{"PLAYER", "CPU", "first to 10", game.MessageServe, "strong", "wide", "\033[38;2;76;175;80m"} {
		if !strings.Contains(got, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestBellRingsIntoFrame(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out, Options{Bell: true})

	s.game.Send(game.ToggleRunOrRestart)
	for i := 0; i < 100000 && s.game.Scores() == (game.Scores{}); i++ {
		s.update()
	}
	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if !strings.Contains(out.String(), "\a") {
		t.Errorf("no bell after a point")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(bufio.NewReader(strings.NewReader("q")), &out, Options{TermSizeFunc: fixedSize(80, 24)})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after quit")
	}
	if !strings.HasPrefix(out.String(), "\033[?25l") {
		t.Errorf("output should start by hiding the cursor")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Errorf("cursor not restored")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, w := io.Pipe()
	defer w.Close()

	err := Run(ctx, bufio.NewReader(r), &bytes.Buffer{}, Options{TermSizeFunc: fixedSize(80, 24)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 0
	_, err := NewSession(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{}, Options{Config: &cfg, TermSizeFunc: fixedSize(80, 24)})
	if err == nil {
		t.Fatalf("expected an error for a zero-width field")
	}
}
