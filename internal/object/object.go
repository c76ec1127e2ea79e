// Package object provides the ball and paddle entities.
package object

import (
	"github.com/tomz197/pong/internal/draw"
)

// Bounds is the playing surface in logical units.
type Bounds struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the surface.
func (b Bounds) CenterX() float64 { return b.Width / 2 }

// CenterY returns the vertical center of the surface.
func (b Bounds) CenterY() float64 { return b.Height / 2 }

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool { return b.Width > 0 && b.Height > 0 }

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
}

// Drawable is an entity that can draw itself onto a canvas.
type Drawable interface {
	Draw(ctx DrawContext) error
}
