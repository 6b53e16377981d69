package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "DEBUG")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if logger == nil {
		t.Fatal("Logger is nil")
	}

	if logger.sugar == nil {
		t.Fatal("Logger sugar is nil")
	}

	if logger.Path() != filepath.Join(tempDir, FileName) {
		t.Errorf("Path() = %q", logger.Path())
	}
}

func TestLoggerLevels(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "WARN")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("Debug message: %s", "test")
	logger.Info("Info message: %s", "test")
	logger.Warn("Warning message: %s", "test")
	logger.Error("Error message: %s", "test")
	_ = logger.Sync()

	content, err := os.ReadFile(filepath.Join(tempDir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	log := string(content)
	if strings.Contains(log, "Debug message") || strings.Contains(log, "Info message") {
		t.Error("messages below WARN should be filtered")
	}
	if !strings.Contains(log, "Warning message: test") || !strings.Contains(log, "Error message: test") {
		t.Errorf("expected WARN and ERROR messages, got:\n%s", log)
	}
}

func TestGetLastLines(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "INFO")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("Line 1")
	logger.Info("Line 2")
	logger.Info("Line 3")
	_ = logger.Sync()

	last2 := logger.GetLastLines(2)
	lines := strings.Split(last2, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), last2)
	}
	if !strings.Contains(lines[0], "Line 2") || !strings.Contains(lines[1], "Line 3") {
		t.Errorf("unexpected tail:\n%s", last2)
	}

	all := logger.GetLastLines(100)
	if !strings.Contains(all, "Line 1") {
		t.Errorf("expected full content when asking for more lines than exist, got:\n%s", all)
	}
}

func TestSanitizeStripsEscapes(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "INFO")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("\x1b[31mred\x1b[0m height")
	_ = logger.Sync()

	tail := logger.GetLastLines(1)
	if strings.Contains(tail, "\x1b") {
		t.Errorf("escape sequence leaked into log: %q", tail)
	}
	if !strings.Contains(tail, "red height") {
		t.Errorf("message text lost: %q", tail)
	}
}

func TestNamedLoggerSharesFile(t *testing.T) {
	tempDir := t.TempDir()

	logger, err := New(tempDir, "DEBUG")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Named("sheet").Debug("drag started", zap.Float64("from", 12))
	_ = logger.Sync()

	tail := logger.GetLastLines(1)
	if !strings.Contains(tail, "sheet") || !strings.Contains(tail, "drag started") {
		t.Errorf("named entry missing: %q", tail)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"Warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	l := Nop()
	l.Info("ignored")
	if l.GetLastLines(5) != "" {
		t.Error("Nop logger should have no tail")
	}
	if err := l.Sync(); err != nil {
		t.Errorf("Sync() = %v", err)
	}
}
