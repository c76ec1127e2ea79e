package game

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"strong": DifficultyStrong,
		"weak":   DifficultyWeak,
		" WEAK ": DifficultyWeak,
		"":       DifficultyStrong,
		"insane": DifficultyStrong,
	}
	for in, want := range tests {
		if got := ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParsePaddleSize(t *testing.T) {
	tests := map[string]PaddleSize{
		"normal": PaddleNormal,
		"narrow": PaddleNarrow,
		"Wide":   PaddleWide,
		"":       PaddleNormal,
		"huge":   PaddleNormal,
	}
	for in, want := range tests {
		if got := ParsePaddleSize(in); got != want {
			t.Errorf("ParsePaddleSize(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPresetValues(t *testing.T) {
	if DifficultyStrong.CPUSpeed() != 4 || DifficultyWeak.CPUSpeed() != 2 {
		t.Errorf("cpu speeds = %v/%v, want 4/2", DifficultyStrong.CPUSpeed(), DifficultyWeak.CPUSpeed())
	}
	for size, want := range map[PaddleSize]float64{PaddleNarrow: 0.5, PaddleNormal: 1, PaddleWide: 2} {
		if got := size.HeightFactor(); got != want {
			t.Errorf("%v factor = %v, want %v", size, got, want)
		}
	}
}
