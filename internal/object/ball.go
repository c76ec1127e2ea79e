package object

import (
	"math/rand/v2"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// BallColor is the fill color of the ball.
var BallColor = draw.RGB(0xFFEB3B)

// Ball is the bouncing ball. X, Y is its center; Size is its radius.
type Ball struct {
	X, Y         float64
	DX, DY       float64 // Velocity in logical units per tick
	Size         float64
	InitialSpeed float64 // Per-axis speed after a reset
}

// NewBall creates a ball at (x, y) moving down-right at initialSpeed.
func NewBall(x, y, size, initialSpeed float64) *Ball {
	return &Ball{
		X:            x,
		Y:            y,
		DX:           initialSpeed,
		DY:           initialSpeed,
		Size:         size,
		InitialSpeed: initialSpeed,
	}
}

// Move advances the ball by one tick and bounces it off the top and bottom
// edges. It reports whether a wall was hit. Y is not clamped, so a fast ball
// may overlap an edge by up to one tick of travel. A ball whose DY a paddle
// has reduced can stay overlapping and bounce every tick while X keeps
// advancing, until it leaves through a side.
func (b *Ball) Move(bounds Bounds) (wallHit bool) {
	b.X += b.DX
	b.Y += b.DY

	if b.Y+b.Size > bounds.Height || b.Y-b.Size < 0 {
		b.DY = -b.DY
		return true
	}
	return false
}

// ResetToCenter places the ball at the center of bounds and serves it
// diagonally in one of the four quadrants, chosen uniformly by rng.
func (b *Ball) ResetToCenter(bounds Bounds, rng *rand.Rand) {
	b.X = bounds.CenterX()
	b.Y = bounds.CenterY()
	b.DX = randomSign(rng) * b.InitialSpeed
	b.DY = randomSign(rng) * b.InitialSpeed
}

// Box returns the ball's bounding box.
func (b Ball) Box() physics.Rect {
	return physics.BoxAround(b.X, b.Y, b.Size)
}

// MovingLeft reports whether the ball travels toward the left edge.
func (b Ball) MovingLeft() bool { return b.DX < 0 }

// MovingRight reports whether the ball travels toward the right edge.
func (b Ball) MovingRight() bool { return b.DX > 0 }

// Draw renders the ball as a filled circle.
func (b Ball) Draw(ctx DrawContext) error {
	ctx.Canvas.FillCircle(b.X, b.Y, b.Size, BallColor)
	return nil
}

func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}
