package object

import (
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/physics"
)

// Paddle is a vertical bat. X, Y is its top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Distance moved per step
	Color         draw.Color
}

// NewPaddle creates a paddle vertically centered in bounds.
func NewPaddle(x, width, height, speed float64, bounds Bounds, color draw.Color) *Paddle {
	p := &Paddle{
		X:      x,
		Width:  width,
		Height: height,
		Speed:  speed,
		Color:  color,
	}
	p.SetVerticalCenter(bounds)
	return p
}

// MoveUp moves the paddle up by Speed, snapping to the top edge.
func (p *Paddle) MoveUp(bounds Bounds) {
	p.Y -= p.Speed
	p.Clamp(bounds)
}

// MoveDown moves the paddle down by Speed, snapping to the bottom edge.
func (p *Paddle) MoveDown(bounds Bounds) {
	p.Y += p.Speed
	p.Clamp(bounds)
}

// Clamp keeps the paddle within [0, bounds.Height - Height].
func (p *Paddle) Clamp(bounds Bounds) {
	p.Y = physics.Clamp(p.Y, 0, bounds.Height-p.Height)
}

// SetVerticalCenter centers the paddle vertically for its current height.
func (p *Paddle) SetVerticalCenter(bounds Bounds) {
	p.Y = bounds.CenterY() - p.Height/2
}

// Center returns the paddle's vertical center.
func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Rect returns the paddle's bounding rectangle.
func (p Paddle) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Draw renders the paddle as a filled rectangle.
func (p Paddle) Draw(ctx DrawContext) error {
	ctx.Canvas.FillRect(p.X, p.Y, p.Width, p.Height, p.Color)
	return nil
}
