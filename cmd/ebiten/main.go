// Command ebiten plays the game in a desktop window.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/logging"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/sound/playback"
)

var (
	backgroundColor = color.RGBA{0x12, 0x12, 0x12, 0xff}
	netColor        = color.RGBA{0x61, 0x61, 0x61, 0xff}
)

const (
	netWidth = 2
	netDash  = 20
	netGap   = 15
)

// binding maps keys to a command sent on press and one sent on release.
type binding struct {
	keys    []ebiten.Key
	press   game.Command
	release *game.Command
}

func held(c game.Command) *game.Command { return &c }

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}, press: game.PressUp, release: held(game.ReleaseUp)},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, press: game.PressDown, release: held(game.ReleaseDown)},
	{keys: []ebiten.Key{ebiten.KeySpace}, press: game.ToggleRunOrRestart},
	{keys: []ebiten.Key{ebiten.KeyR}, press: game.Restart},
	{keys: []ebiten.Key{ebiten.KeyM}, press: game.ToggleSound},
	{keys: []ebiten.Key{ebiten.Key1}, press: game.SetCPUDifficulty(game.DifficultyStrong)},
	{keys: []ebiten.Key{ebiten.Key2}, press: game.SetCPUDifficulty(game.DifficultyWeak)},
	{keys: []ebiten.Key{ebiten.Key3}, press: game.SetPaddleSize(game.PaddleNarrow)},
	{keys: []ebiten.Key{ebiten.Key4}, press: game.SetPaddleSize(game.PaddleNormal)},
	{keys: []ebiten.Key{ebiten.Key5}, press: game.SetPaddleSize(game.PaddleWide)},
}

// window adapts a game to ebiten's Update/Draw/Layout cycle.
type window struct {
	game *game.Game
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				w.game.Send(b.press)
			}
			if b.release != nil && inpututil.IsKeyJustReleased(k) {
				w.game.Send(*b.release)
			}
		}
	}
	w.game.Tick()
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	screen.Fill(backgroundColor)

	for y := 0.0; y < s.Height; y += netDash + netGap {
		vector.DrawFilledRect(screen, float32(s.Width/2-netWidth/2), float32(y), netWidth, netDash, netColor, false)
	}

	for _, p := range []object.Paddle{s.Player, s.CPU} {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), rgba(p.Color), false)
	}
	vector.DrawFilledCircle(screen, float32(s.Ball.X), float32(s.Ball.Y), float32(s.Ball.Size), rgba(object.BallColor), true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PLAYER %d", s.Scores.Player), int(s.Width/4), 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("CPU %d", s.Scores.CPU), int(s.Width*3/4), 10)

	soundState := "off"
	if s.SoundEnabled {
		soundState = "on"
	}
	status := fmt.Sprintf("CPU: %s  paddle: %s  sound: %s  (1/2 cpu, 3/4/5 paddle, m sound, r restart)",
		s.Difficulty, s.PaddleSize, soundState)
	ebitenutil.DebugPrintAt(screen, status, 10, int(s.Height)-20)

	if s.Message != "" {
		// The debug font is 6x16 pixels per glyph.
		ebitenutil.DebugPrintAt(screen, s.Message, int(s.Width/2)-len(s.Message)*3, int(s.Height/2)-40)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return int(cfg.Width), int(cfg.Height)
}

func rgba(c draw.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func main() {
	logger := logging.New(os.Stderr, config.GetEnv("PONG_LOG_LEVEL", ""))

	speaker := playback.NewManager(config.GetEnvBool("PONG_SOUND", true))
	go func() {
		if err := speaker.Start(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}()
	defer speaker.Close()

	cfg, opts := config.Game()
	opts = append(opts, game.WithSink(speaker), game.WithLogger(logger))
	g, err := game.New(cfg, opts...)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(&window{game: g}); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", "err", err)
	}
}
