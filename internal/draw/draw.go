// Package draw renders to ANSI terminals using half-block characters.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a 24-bit terminal color. The zero Color is transparent.
type Color struct {
	R, G, B uint8
}

// IsZero reports whether c is the transparent color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// RGB builds a Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
