package draw

import (
	"bytes"
	"strings"
	"testing"
)

var testGreen = RGB(0x4CAF50)

// TestFillRectScales verifies logical rectangles map onto scaled terminal pixels
func TestFillRectScales(t *testing.T) {
	// 80 columns x 30 rows => 80 x 60 pixels over an 800 x 600 logical surface
	c := NewScaledCanvas(80, 30, 800, 600)

	c.FillRect(0, 250, 15, 100, testGreen)

	// x in [0, 1.5) px -> columns 0..1, y in [25, 35) px -> rows 25..34
	for y := 25; y < 35; y++ {
		if got := c.At(0, y); got != testGreen {
			t.Fatalf("pixel (0,%d) = %+v, want paddle color", y, got)
		}
	}
	if got := c.At(0, 24); !got.IsZero() {
		t.Errorf("pixel above paddle set: %+v", got)
	}
	if got := c.At(0, 35); !got.IsZero() {
		t.Errorf("pixel below paddle set: %+v", got)
	}
	if got := c.At(5, 30); !got.IsZero() {
		t.Errorf("pixel right of paddle set: %+v", got)
	}
}

// TestFillRectTiny verifies a sub-pixel rectangle still covers a pixel
func TestFillRectTiny(t *testing.T) {
	c := NewScaledCanvas(10, 5, 800, 600)
	c.FillRect(400, 300, 1, 1, testGreen)

	set := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if !c.At(x, y).IsZero() {
				set++
			}
		}
	}
	if set == 0 || set > 2 {
		t.Errorf("tiny rect covered %d pixels, want 1 or 2", set)
	}
}

// TestFillCircleCenter verifies the ball center pixel is always set
func TestFillCircleCenter(t *testing.T) {
	c := NewScaledCanvas(40, 10, 80, 20)
	yellow := RGB(0xFFEB3B)
	c.FillCircle(40, 10, 2, yellow)

	if got := c.At(20, 10); got != yellow {
		t.Errorf("center pixel = %+v, want ball color", got)
	}
}

// TestClearResetsPixels verifies Clear empties the canvas
func TestClearResetsPixels(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(0, 0, 4, 4, testGreen)
	c.Clear()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !c.At(x, y).IsZero() {
				t.Fatalf("pixel (%d,%d) still set after Clear", x, y)
			}
		}
	}
}

// TestRenderHalfBlocks verifies the glyph chosen for each top/bottom combination
func TestRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 1)
	red := RGB(0xFF0000)

	c.setPixel(0, 0, red)       // top only
	c.setPixel(1, 1, red)       // bottom only
	c.setPixel(2, 0, red)       // both, same color
	c.setPixel(2, 1, red)       //
	c.setPixel(3, 0, red)       // both, different colors
	c.setPixel(3, 1, testGreen) //

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.HasPrefix(out, "\033[1;1H") {
		t.Errorf("render should start with a cursor move, got %q", out[:min(len(out), 10)])
	}
	for _, glyph := range []string{"▀", "▄", "█"} {
		if !strings.Contains(out, glyph) {
			t.Errorf("render output missing %q: %q", glyph, out)
		}
	}
	if !strings.Contains(out, "\033[38;2;255;0;0m") {
		t.Errorf("render output missing red foreground: %q", out)
	}
	if !strings.Contains(out, "\033[48;2;76;175;80m") {
		t.Errorf("render output missing green background: %q", out)
	}
	if !strings.HasSuffix(out, "\033[0m") {
		t.Errorf("render output should reset attributes at end of row: %q", out)
	}
}

// TestRenderAppliesOffset verifies the canvas origin follows SetOffset
func TestRenderAppliesOffset(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetOffset(3, 4)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "\033[5;4H") || !strings.Contains(out, "\033[6;4H") {
		t.Errorf("rows should start at offset positions: %q", out)
	}
}

// TestDashedVLine verifies dashes and gaps alternate
func TestDashedVLine(t *testing.T) {
	c := NewCanvas(3, 10) // 1:1 mapping, 20 pixel rows
	white := RGB(0xFFFFFF)
	c.DashedVLine(1, 0, 20, 4, 4, white)

	if c.At(1, 0).IsZero() || c.At(1, 3).IsZero() {
		t.Errorf("first dash missing")
	}
	if !c.At(1, 6).IsZero() {
		t.Errorf("gap should be empty")
	}
	if c.At(1, 8).IsZero() {
		t.Errorf("second dash missing")
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(1, 1, "hi\nyo")

	if out.Len() != 0 {
		t.Fatalf("nothing should be written before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := "\033[2;3Hhi\033[3;3Hyo"
	if got := out.String(); got != want {
		t.Errorf("flushed %q, want %q", got, want)
	}
	if cw.Len() != 0 {
		t.Errorf("buffer not reset after Flush")
	}
}
