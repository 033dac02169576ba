package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Ticks int `env:"SKIRMISH_TEST_TICKS" envDefault:"600"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Ticks != 600 {
		t.Fatalf("expected default ticks 600, got %d", cfg.Ticks)
	}
}

func TestParseEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SKIRMISH_TEST_TICKS", "42")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Ticks != 42 {
		t.Fatalf("expected ticks 42, got %d", cfg.Ticks)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SKIRMISH_TEST_TICKS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
