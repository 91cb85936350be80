package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"DesiresAfterDuties/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the log file created inside the storage directory.
const FileName = "survey.log"

// Logger is a file-backed zap logger. The terminal UI owns the screen, so
// everything it logs goes here and is read back by the console panel.
type Logger struct {
	zap      *zap.Logger
	filePath string
}

// New creates a logger appending to storagePath/survey.log at the given
// level ("DEBUG", "INFO", "WARN", "ERROR").
func New(storagePath, level string) (*Logger, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(storagePath, FileName)
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(logFile), parseLevel(level))
	zapLogger := zap.New(sanitizeCore{fileCore}, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		zap:      zapLogger,
		filePath: logPath,
	}, nil
}

// Zap returns the underlying structured logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.filePath
}

// GetLastLines returns up to n trailing lines of the log file.
func (l *Logger) GetLastLines(n int) string {
	content, err := os.ReadFile(l.filePath)
	if err != nil {
		return "Error reading log file"
	}

	lines := splitLines(string(content))
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}

	return strings.Join(lines[len(lines)-n:], "\n")
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// sanitizeCore strips terminal escapes from messages before they reach the
// wrapped core.
type sanitizeCore struct {
	zapcore.Core
}

func (c sanitizeCore) With(fields []zapcore.Field) zapcore.Core {
	return sanitizeCore{c.Core.With(fields)}
}

func (c sanitizeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c sanitizeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = utils.SanitizeLog(ent.Message)
	return c.Core.Write(ent, fields)
}
