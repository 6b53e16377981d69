package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the storage directory.
const FileName = "snapsheet.log"

type Level string

const (
	DEBUG Level = "DEBUG"
	INFO  Level = "INFO"
	WARN  Level = "WARN"
	ERROR Level = "ERROR"
)

// Logger wraps a zap logger writing to a file
type Logger struct {
	base     *zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
}

// New opens (or creates) storagePath/snapsheet.log and logs at level and above.
func New(storagePath string, level string) (*Logger, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(storagePath, FileName)

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	fileEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	fileCore := zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), ParseLevel(level))
	base := zap.New(fileCore)

	return &Logger{
		base:     base,
		sugar:    base.WithOptions(zap.AddCallerSkip(1)).Sugar(),
		filePath: logPath,
	}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	base := zap.NewNop()
	return &Logger{base: base, sugar: base.Sugar()}
}

// ParseLevel maps a level name onto a zap level, defaulting to INFO.
func ParseLevel(level string) zapcore.Level {
	switch Level(strings.ToUpper(level)) {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Named returns the underlying zap logger scoped to name, for components
// that take structured fields.
func (l *Logger) Named(name string) *zap.Logger {
	return l.base.Named(name)
}

func (l *Logger) log(level Level, message string) {
	message = sanitize(message)

	switch level {
	case DEBUG:
		l.sugar.Debug(message)
	case INFO:
		l.sugar.Info(message)
	case WARN:
		l.sugar.Warn(message)
	case ERROR:
		l.sugar.Error(message)
	}
}

func (l *Logger) Debug(format string, v ...any) {
	l.log(DEBUG, fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...any) {
	l.log(INFO, fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...any) {
	l.log(WARN, fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...any) {
	l.log(ERROR, fmt.Sprintf(format, v...))
}

// Path returns the log file path, or "" for a Nop logger.
func (l *Logger) Path() string {
	return l.filePath
}

// GetLastLines returns up to n trailing lines of the log file.
func (l *Logger) GetLastLines(n int) string {
	if l.filePath == "" {
		return ""
	}
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		return "Error reading log file"
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	return strings.Join(lines[len(lines)-n:], "\n")
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}

// sanitize drops terminal escape sequences so the log file stays plain text.
func sanitize(s string) string {
	return ansi.Strip(s)
}
