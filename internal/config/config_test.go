package config

import (
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("QF_TEST_KEY", "value")
	if got := getEnv("QF_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want %q", got, "value")
	}
	if got := getEnv("QF_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("QF_TEST_INT", "42")
	if got := getEnvInt("QF_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	t.Setenv("QF_TEST_INT", "not-a-number")
	if got := getEnvInt("QF_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want fallback 7", got)
	}
	if got := getEnvInt("QF_TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt = %d, want fallback 7", got)
	}
}

func TestParseOrigins(t *testing.T) {
	if got := parseOrigins(""); got != nil {
		t.Errorf("parseOrigins(\"\") = %v, want nil", got)
	}

	got := parseOrigins(" https://a.example , https://b.example ,")
	want := []string{"https://a.example", "https://b.example"}
	if len(got) != len(want) {
		t.Fatalf("parseOrigins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseOrigins[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEFAULT_TIME_LIMIT", "")
	cfg := Load()
	if cfg.DefaultTimeLimit != 60 {
		t.Errorf("DefaultTimeLimit = %d, want 60", cfg.DefaultTimeLimit)
	}
	if cfg.ServerPort == "" {
		t.Error("ServerPort is empty")
	}
}
