package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("PONG_TEST_STR", "value")
	if got := GetEnv("PONG_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("PONG_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want fallback", got)
	}

	t.Setenv("PONG_TEST_EMPTY", "")
	if got := GetEnv("PONG_TEST_EMPTY", "fallback"); got != "" {
		t.Errorf("GetEnv empty = %q, want empty string", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"7", 7},
		{" 15 ", 15},
		{"-3", -3},
		{"ten", 10},
		{"", 10},
	}
	for _, tt := range tests {
		t.Setenv("PONG_TEST_INT", tt.value)
		if got := GetEnvInt("PONG_TEST_INT", 10); got != tt.want {
			t.Errorf("GetEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
	if got := GetEnvInt("PONG_TEST_UNSET", 10); got != 10 {
		t.Errorf("GetEnvInt unset = %d, want 10", got)
	}
}

func TestGetEnvUint64(t *testing.T) {
	t.Setenv("PONG_TEST_SEED", "12345")
	if got, ok := GetEnvUint64("PONG_TEST_SEED"); !ok || got != 12345 {
		t.Errorf("GetEnvUint64 = %d,%v, want 12345,true", got, ok)
	}
	t.Setenv("PONG_TEST_SEED", "-1")
	if _, ok := GetEnvUint64("PONG_TEST_SEED"); ok {
		t.Errorf("negative seed should be rejected")
	}
	if _, ok := GetEnvUint64("PONG_TEST_UNSET"); ok {
		t.Errorf("unset seed should report false")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"ON", false, true},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("PONG_TEST_BOOL", tt.value)
		if got := GetEnvBool("PONG_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}
