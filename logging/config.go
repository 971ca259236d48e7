package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/healthgeo/gazetteer-tools/config"
)

const logFileName = "app.log"

// CappedFileLogger writes log records to a single append-only file. When
// the file would grow past maxFileSize, the current file is renamed to
// app.log.old and a fresh one is started, so at most two files exist.
type CappedFileLogger struct {
	logDir      string
	maxFileSize int64
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// NewCappedFileLogger creates a capped file logger writing under logDir
func NewCappedFileLogger(logDir string, maxFileSize int64) *CappedFileLogger {
	return &CappedFileLogger{
		logDir:      logDir,
		maxFileSize: maxFileSize,
	}
}

// Write writes data to the current log file, rotating first if the write
// would push the file past the size limit
func (cl *CappedFileLogger) Write(p []byte) (n int, err error) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.currentFile == nil {
		if err := cl.openCurrent(); err != nil {
			return 0, err
		}
	}

	if cl.maxFileSize > 0 && cl.currentSize+int64(len(p)) > cl.maxFileSize {
		if err := cl.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = cl.currentFile.Write(p)
	cl.currentSize += int64(n)
	return n, err
}

// openCurrent opens the log file for appending (caller must hold the lock)
func (cl *CappedFileLogger) openCurrent() error {
	logPath := filepath.Join(cl.logDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file %s: %w", logPath, err)
	}

	cl.currentFile = file
	cl.currentSize = info.Size()
	return nil
}

// rotate moves the full file aside and opens a fresh one (caller must
// hold the lock)
func (cl *CappedFileLogger) rotate() error {
	if err := cl.currentFile.Close(); err != nil {
		slog.Warn("Failed to close log file during rotation", "error", err)
	}
	cl.currentFile = nil
	cl.currentSize = 0

	logPath := filepath.Join(cl.logDir, logFileName)
	if err := os.Rename(logPath, logPath+".old"); err != nil {
		return fmt.Errorf("failed to rotate log file %s: %w", logPath, err)
	}

	return cl.openCurrent()
}

// Close closes the current log file if one is open
func (cl *CappedFileLogger) Close() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.currentFile == nil {
		return nil
	}
	err := cl.currentFile.Close()
	cl.currentFile = nil
	return err
}

// parseLogLevel maps a configured level string to a slog level
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger configures slog to log to both console and a capped file.
// Console output goes to stderr so stdout stays free for command output.
// The file always records at debug level for later inspection; the
// console honors the configured level.
func SetupLogger(cfg *config.Config) *slog.Logger {
	consoleHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})

	// Create the log directory if it doesn't exist
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		// If we can't create the log directory, just log to console
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to create log directory", "directory", cfg.LogDir, "error", err)
		return consoleLogger
	}

	cappedLogger := NewCappedFileLogger(cfg.LogDir, cfg.MaxLogFileSize)

	// Console gets text format, file gets JSON format for better parsing
	fileHandler := slog.NewJSONHandler(cappedLogger, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	// Combine handlers - write to both
	multiHandler := &multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}

	return slog.New(multiHandler)
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler enables it
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	// Handle with all handlers
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	// Create new multiHandler with handlers that have the attrs
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	// Create new multiHandler with handlers that have the group
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
