package game

import "strings"

// Difficulty selects the CPU paddle speed.
type Difficulty int

const (
	DifficultyStrong Difficulty = iota
	DifficultyWeak
)

// CPUSpeed returns the CPU paddle speed for the difficulty.
func (d Difficulty) CPUSpeed() float64 {
	if d == DifficultyWeak {
		return CPUSpeedWeak
	}
	return CPUSpeedStrong
}

func (d Difficulty) String() string {
	if d == DifficultyWeak {
		return "weak"
	}
	return "strong"
}

// ParseDifficulty maps a preset name to a Difficulty.
// Unknown names fall back to DifficultyStrong.
func ParseDifficulty(s string) Difficulty {
	if strings.EqualFold(strings.TrimSpace(s), "weak") {
		return DifficultyWeak
	}
	return DifficultyStrong
}

// PaddleSize selects the human paddle height.
type PaddleSize int

const (
	PaddleNormal PaddleSize = iota
	PaddleNarrow
	PaddleWide
)

// HeightFactor returns the multiple of the base paddle height.
func (s PaddleSize) HeightFactor() float64 {
	switch s {
	case PaddleNarrow:
		return 0.5
	case PaddleWide:
		return 2
	default:
		return 1
	}
}

func (s PaddleSize) String() string {
	switch s {
	case PaddleNarrow:
		return "narrow"
	case PaddleWide:
		return "wide"
	default:
		return "normal"
	}
}

// ParsePaddleSize maps a preset name to a PaddleSize.
// Unknown names fall back to PaddleNormal.
func ParsePaddleSize(s string) PaddleSize {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "narrow":
		return PaddleNarrow
	case "wide":
		return PaddleWide
	default:
		return PaddleNormal
	}
}
