package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/object"
)

var netColor = draw.RGB(0x616161)

// hudStyles are the lipgloss styles for text drawn over the field.
type hudStyles struct {
	player   lipgloss.Style
	cpu      lipgloss.Style
	label    lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	message  lipgloss.Style
	notice   lipgloss.Style
	help     lipgloss.Style
}

func newHUDStyles(r *lipgloss.Renderer) *hudStyles {
	return &hudStyles{
		player:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50")),
		cpu:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		label:    r.NewStyle().Foreground(lipgloss.Color("#9E9E9E")),
		active:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#FFEB3B")),
		inactive: r.NewStyle().Foreground(lipgloss.Color("#BDBDBD")),
		message: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#212121")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFEB3B")).
			BorderBackground(lipgloss.Color("#212121")).
			Padding(0, 2),
		notice: r.NewStyle().Italic(true).Foreground(lipgloss.Color("#FFEB3B")),
		help:   r.NewStyle().Faint(true),
	}
}

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	snapshot := s.game.Snapshot()

	s.canvas.Clear()
	if err := drawField(s.canvas, snapshot); err != nil {
		return err
	}

	// Render canvas to terminal
	s.canvas.Render(s.chunkWriter)

	// Draw border when terminal exceeds the render area
	s.canvas.RenderBorder(s.chunkWriter)

	// Draw UI overlay
	s.drawUI(snapshot)

	return s.chunkWriter.Flush()
}

// drawField draws the net, both paddles and the ball.
func drawField(c *draw.Canvas, snapshot game.Snapshot) error {
	c.DashedVLine(snapshot.Width/2, 0, snapshot.Height, netDash, netGap, netColor)

	ctx := object.DrawContext{Canvas: c}
	for _, obj := range snapshot.Drawables() {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// drawUI draws the text overlay for the current screen.
func (s *Session) drawUI(snapshot game.Snapshot) {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if s.state.Screen == ScreenShutdown {
		s.drawShutdownScreen(centerX, centerY)
		return
	}

	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	s.drawScoreBar(snapshot, centerX)
	s.drawPresetBar(snapshot, centerX, termHeight-1)
	s.drawHelp(centerX, termHeight)

	if s.state.announcement != "" {
		s.writeCentered(centerX, 2, s.hud.notice.Render(s.state.announcement))
	}
	if snapshot.Message != "" {
		box := s.hud.message.Render(snapshot.Message)
		s.writeCentered(centerX, centerY-lipgloss.Height(box)/2, box)
	}
}

// writeCentered writes a possibly multi-line block centered on col.
func (s *Session) writeCentered(col, row int, block string) {
	x := col - lipgloss.Width(block)/2
	if x < 1 {
		x = 1
	}
	s.chunkWriter.WriteAt(x, row, block)
}

// drawScoreBar draws both scores on the top row.
func (s *Session) drawScoreBar(snapshot game.Snapshot, centerX int) {
	h := s.hud
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		h.player.Render(fmt.Sprintf("PLAYER %2d", snapshot.Scores.Player)),
		h.label.Render(fmt.Sprintf("  first to %d  ", snapshot.WinningScore)),
		h.cpu.Render(fmt.Sprintf("%-2d CPU", snapshot.Scores.CPU)),
	)
	s.writeCentered(centerX, 1, bar)
}

// drawPresetBar draws the difficulty, paddle size and sound toggles with
// the active choices highlighted.
func (s *Session) drawPresetBar(snapshot game.Snapshot, centerX, row int) {
	h := s.hud
	option := func(key string, label fmt.Stringer, on bool) string {
		text := fmt.Sprintf("%s %s", key, label)
		if on {
			return h.active.Render(text)
		}
		return h.inactive.Render(text)
	}

	soundState := "off"
	if snapshot.SoundEnabled {
		soundState = "on"
	}

	parts := []string{
		h.label.Render("CPU "),
		option("1", game.DifficultyStrong, snapshot.Difficulty == game.DifficultyStrong), " ",
		option("2", game.DifficultyWeak, snapshot.Difficulty == game.DifficultyWeak),
		h.label.Render("  PADDLE "),
		option("3", game.PaddleNarrow, snapshot.PaddleSize == game.PaddleNarrow), " ",
		option("4", game.PaddleNormal, snapshot.PaddleSize == game.PaddleNormal), " ",
		option("5", game.PaddleWide, snapshot.PaddleSize == game.PaddleWide),
		h.label.Render("  SOUND "),
		h.inactive.Render("m " + soundState),
	}
	s.writeCentered(centerX, row, strings.Join(parts, ""))
}

// drawHelp draws the key help on the bottom row.
func (s *Session) drawHelp(centerX, row int) {
	s.writeCentered(centerX, row, s.hud.help.Render("w/s ↑/↓ move · SPACE start/pause · r restart · q quit"))
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	title := "INACTIVITY WARNING"
	s.writeCentered(centerX, centerY-2, s.hud.notice.Render(title))

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(InactivityDisconnectUser-time.Since(s.state.lastInput).Seconds()),
	)
	s.writeCentered(centerX, centerY, msg)

	hint := "Press any key to continue"
	s.writeCentered(centerX, centerY+2, s.hud.help.Render(hint))
}

// drawShutdownScreen draws the server shutdown notice.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	title := "SERVER SHUTTING DOWN"
	s.writeCentered(centerX, centerY-2, s.hud.notice.Render(title))

	remaining := max(int(s.state.shutdownTimer+0.999), 0)
	msg := fmt.Sprintf("Thanks for playing! Disconnecting in %d seconds.", remaining)
	s.writeCentered(centerX, centerY, msg)
}
