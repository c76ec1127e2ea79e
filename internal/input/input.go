// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// Terminals send no key-up events, so a movement key counts as held for a
// window after its last byte. The first byte of a press gets keyRepeatDelay
// to bridge the terminal's auto-repeat delay; once repeats arrive the window
// shrinks to keyHoldDuration so a release is noticed quickly. A single tap
// therefore moves the paddle for up to keyRepeatDelay.
const (
	keyRepeatDelay  = 300 * time.Millisecond
	keyHoldDuration = 120 * time.Millisecond
)

// Key is a discrete key press.
type Key int

const (
	KeySpace   Key = iota + 1 // Start, pause, resume
	KeyRestart                // r
	KeySound                  // m
	KeyStrong                 // 1
	KeyWeak                   // 2
	KeyNarrow                 // 3
	KeyNormal                 // 4
	KeyWide                   // 5
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyRestart:
		return "restart"
	case KeySound:
		return "sound"
	case KeyStrong:
		return "strong"
	case KeyWeak:
		return "weak"
	case KeyNarrow:
		return "narrow"
	case KeyNormal:
		return "normal"
	case KeyWide:
		return "wide"
	default:
		return "none"
	}
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool  // Held within the hold window
	Down    bool  // Held within the hold window
	Keys    []Key // Discrete presses in arrival order
	Pressed []byte
}

// heldKey tracks the last byte of a movement key and whether the terminal
// is auto-repeating it.
type heldKey struct {
	last      time.Time
	repeating bool
}

func (h *heldKey) press(now time.Time) {
	h.repeating = h.held(now)
	h.last = now
}

func (h heldKey) held(now time.Time) bool {
	window := keyRepeatDelay
	if h.repeating {
		window = keyHoldDuration
	}
	return now.Sub(h.last) < window
}

// keyState tracks both movement keys.
type keyState struct {
	up   heldKey
	down heldKey
}

// Stream delivers input bytes via a channel and tracks held-key state.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, time.Now())
}

// parse updates held-key timestamps from buf and builds the frame's input.
// Arrow keys arrive as CSI (ESC [ A) or SS3 (ESC O A) sequences.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf, Quit: s.closed}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			switch buf[i+2] {
			case 'A':
				s.state.up.press(now)
			case 'B':
				s.state.down.press(now)
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			in.Quit = true
		case 'w', 'W', 'k', 'K':
			s.state.up.press(now)
		case 's', 'S', 'j', 'J':
			s.state.down.press(now)
		default:
			if k := keyFor(b); k != 0 {
				in.Keys = append(in.Keys, k)
			}
		}
	}

	in.Up = s.state.up.held(now)
	in.Down = s.state.down.held(now)
	return in
}

func keyFor(b byte) Key {
	switch b {
	case ' ':
		return KeySpace
	case 'r', 'R':
		return KeyRestart
	case 'm', 'M':
		return KeySound
	case '1':
		return KeyStrong
	case '2':
		return KeyWeak
	case '3':
		return KeyNarrow
	case '4':
		return KeyNormal
	case '5':
		return KeyWide
	}
	return 0
}
