package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoggerMinLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, LevelWarn)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("failed %s", "load")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("messages below min level were written: %q", out.String())
	}
	if !strings.Contains(out.String(), "shown 3") {
		t.Errorf("warn message missing: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "failed load") {
		t.Errorf("error message missing from error writer: %q", errOut.String())
	}
}
