package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"error":   "error",
		"info":    "info",
		"bogus":   "info",
		"":        "info",
		"VERBOSE": "info",
	}
	for in, want := range cases {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "viewer.log")

	cfg := DefaultFileConfig(logFile)
	cfg.Compress = false
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Info("hello from test")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty after write")
	}
}
