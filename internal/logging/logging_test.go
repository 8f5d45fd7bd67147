package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		logger := New(tc.level, "json")
		if !logger.Core().Enabled(tc.want) {
			t.Errorf("level %q: expected %v enabled", tc.level, tc.want)
		}
		if tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1) {
			t.Errorf("level %q: expected %v disabled", tc.level, tc.want-1)
		}
		logger.Sync()
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	logger := New("info", "console")
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Sync()
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("nil must yield a nop logger")
	}
	real := zap.NewNop()
	if OrNop(real) != real {
		t.Fatal("non-nil logger must pass through")
	}
}
