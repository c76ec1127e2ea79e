package input

import (
	"bufio"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseDiscreteKeys(t *testing.T) {
	s := newStream()
	in := s.parse([]byte(" rm12345x"), time.Now())

	want := []Key{KeySpace, KeyRestart, KeySound, KeyStrong, KeyWeak, KeyNarrow, KeyNormal, KeyWide}
	if !slices.Equal(in.Keys, want) {
		t.Errorf("keys = %v, want %v", in.Keys, want)
	}
	if in.Up || in.Down || in.Quit {
		t.Errorf("unexpected held state: %+v", in)
	}
}

func TestParseQuit(t *testing.T) {
	for _, b := range []byte{'q', 'Q', '\x03'} {
		s := newStream()
		if in := s.parse([]byte{b}, time.Now()); !in.Quit {
			t.Errorf("byte %q should quit", b)
		}
	}
}

func TestParseArrowSequences(t *testing.T) {
	now := time.Now()

	s := newStream()
	in := s.parse([]byte("\x1b[A"), now)
	if !in.Up || in.Down {
		t.Errorf("CSI up: %+v", in)
	}
	if len(in.Keys) != 0 {
		t.Errorf("arrow produced discrete keys: %v", in.Keys)
	}

	s = newStream()
	in = s.parse([]byte("\x1bOB"), now)
	if !in.Down || in.Up {
		t.Errorf("SS3 down: %+v", in)
	}
}

func TestHeldKeysExpire(t *testing.T) {
	s := newStream()
	start := time.Now()

	if in := s.parse([]byte("w"), start); !in.Up {
		t.Fatalf("w should hold up")
	}
	if in := s.parse(nil, start.Add(keyRepeatDelay-time.Millisecond)); !in.Up {
		t.Errorf("up released before the repeat delay")
	}
	if in := s.parse(nil, start.Add(keyRepeatDelay)); in.Up {
		t.Errorf("up still held after the repeat delay")
	}

	if in := s.parse([]byte("j"), start); !in.Down {
		t.Errorf("j should hold down")
	}
}

// A held arrow sends one byte, waits for the repeat delay, then repeats
// quickly. The key must stay held across the delay and release soon after
// the repeats stop.
func TestHeldKeyBridgesRepeatDelay(t *testing.T) {
	s := newStream()
	now := time.Now()

	s.parse([]byte("\x1b[A"), now)
	for frame := time.Duration(1); frame*16*time.Millisecond < 250*time.Millisecond; frame++ {
		if in := s.parse(nil, now.Add(frame*16*time.Millisecond)); !in.Up {
			t.Fatalf("up released %v into the repeat delay", frame*16*time.Millisecond)
		}
	}

	now = now.Add(250 * time.Millisecond)
	for i := 0; i < 5; i++ {
		now = now.Add(33 * time.Millisecond)
		if in := s.parse([]byte("\x1b[A"), now); !in.Up {
			t.Fatalf("up released during auto-repeat")
		}
	}

	if in := s.parse(nil, now.Add(keyHoldDuration-time.Millisecond)); !in.Up {
		t.Errorf("up released inside the repeat window")
	}
	if in := s.parse(nil, now.Add(keyHoldDuration)); in.Up {
		t.Errorf("up still held %v after the last repeat", keyHoldDuration)
	}
}

func TestStreamClosesOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	deadline := time.Now().Add(time.Second)
	var keys []Key
	for !s.Closed() && time.Now().Before(deadline) {
		in := ReadInput(s)
		keys = append(keys, in.Keys...)
		time.Sleep(time.Millisecond)
	}
	if !s.Closed() {
		t.Fatalf("stream not closed after EOF")
	}
	if !slices.Equal(keys, []Key{KeySpace}) {
		t.Errorf("keys = %v, want [space]", keys)
	}
	if in := ReadInput(s); !in.Quit {
		t.Errorf("closed stream should report quit")
	}
}
