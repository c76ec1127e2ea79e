package sound

import "math"

// MIDI note numbers used by the game cues.
const (
	NoteG3 = 55
	NoteC4 = 60
	NoteG4 = 67
	NoteC5 = 72
	NoteE5 = 76
	NoteC6 = 84
)

// noteFrequencies holds equal-tempered frequencies for MIDI notes 0-127,
// with A4 (69) at 440 Hz.
var noteFrequencies [128]float64

func init() {
	for i := range noteFrequencies {
		noteFrequencies[i] = 440 * math.Pow(2, (float64(i)-69)/12)
	}
}

// NoteFreq returns the frequency in Hz of a MIDI note, or 0 when out of range.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= len(noteFrequencies) {
		return 0
	}
	return noteFrequencies[midi]
}
