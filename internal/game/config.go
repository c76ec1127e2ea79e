package game

import (
	"errors"
	"fmt"

	"github.com/tomz197/pong/internal/object"
)

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Surface
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Paddles
const (
	PaddleWidth      = 15.0
	BasePaddleHeight = 100.0 // Height of the "normal" preset
	PaddleSpeed      = 8.0   // Human paddle step per tick
)

// CPU speeds per difficulty preset
const (
	CPUSpeedStrong = 4.0
	CPUSpeedWeak   = 2.0
)

// Ball
const (
	BallSize            = 10.0 // Radius
	BallInitialSpeed    = 5.0  // Per-axis speed after a reset
	MinVerticalSpeed    = 2.0  // Minimum |dy| after a paddle hit
	DefaultWinningScore = 10
)

var (
	// ErrInvalidSurface is returned when the surface has a non-positive dimension.
	ErrInvalidSurface = errors.New("invalid surface size")
	// ErrInvalidConfig is returned for non-positive sizes, speeds or winning score.
	ErrInvalidConfig = errors.New("invalid game config")
)

// Config holds the physics constants of a session.
type Config struct {
	Width            float64
	Height           float64
	PaddleWidth      float64
	BasePaddleHeight float64
	PaddleSpeed      float64
	BallSize         float64
	BallSpeed        float64
	MinVerticalSpeed float64
	WinningScore     int
	Difficulty       Difficulty // Initial CPU difficulty
	PaddleSize       PaddleSize // Initial human paddle size
}

// DefaultConfig returns the standard 800x600 setup.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		PaddleWidth:      PaddleWidth,
		BasePaddleHeight: BasePaddleHeight,
		PaddleSpeed:      PaddleSpeed,
		BallSize:         BallSize,
		BallSpeed:        BallInitialSpeed,
		MinVerticalSpeed: MinVerticalSpeed,
		WinningScore:     DefaultWinningScore,
		Difficulty:       DifficultyStrong,
		PaddleSize:       PaddleNormal,
	}
}

// Bounds returns the surface as object bounds.
func (c Config) Bounds() object.Bounds {
	return object.Bounds{Width: c.Width, Height: c.Height}
}

// Validate checks the config for values the simulation cannot run with.
func (c Config) Validate() error {
	if !c.Bounds().Valid() {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSurface, c.Width, c.Height)
	}
	switch {
	case c.PaddleWidth <= 0:
		return fmt.Errorf("%w: paddle width %v", ErrInvalidConfig, c.PaddleWidth)
	case c.BasePaddleHeight <= 0:
		return fmt.Errorf("%w: paddle height %v", ErrInvalidConfig, c.BasePaddleHeight)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed %v", ErrInvalidConfig, c.PaddleSpeed)
	case c.BallSize <= 0:
		return fmt.Errorf("%w: ball size %v", ErrInvalidConfig, c.BallSize)
	case c.BallSpeed <= 0:
		return fmt.Errorf("%w: ball speed %v", ErrInvalidConfig, c.BallSpeed)
	case c.MinVerticalSpeed < 0:
		return fmt.Errorf("%w: min vertical speed %v", ErrInvalidConfig, c.MinVerticalSpeed)
	case c.WinningScore <= 0:
		return fmt.Errorf("%w: winning score %d", ErrInvalidConfig, c.WinningScore)
	}
	return nil
}
