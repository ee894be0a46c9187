// Package logger provides logging for the sweet-shop backend with
// dual-backend logging (console and file).
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"sweet-shop/config"

	"github.com/op/go-logging"
)

const (
	logFileName = "sweet-shop.log"      // Log file name
	timeFormat  = "2006/01/02 15:04:05" // Log timestamp format
)

var (
	logger  *logging.Logger
	logFile *os.File
)

// InitLogger initializes the console and file logging backends. Console
// logging uses the specified level, file logging always uses DEBUG level.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger("sweet-shop")
	backends := make([]logging.Backend, 0, 2)

	consoleBackend := logging.NewLogBackend(os.Stderr, "", 0)
	consoleFormatted := logging.NewBackendFormatter(consoleBackend, newFormatter(true))
	leveledConsole := logging.AddModuleLevel(consoleFormatted)
	leveledConsole.SetLevel(level, "sweet-shop")
	backends = append(backends, leveledConsole)

	if fileBackend := initFileBackend(); fileBackend != nil {
		leveledFile := logging.AddModuleLevel(fileBackend)
		leveledFile.SetLevel(logging.DEBUG, "sweet-shop")
		backends = append(backends, leveledFile)
	}

	multiBackend := logging.MultiLogger(backends...)
	newLogger.SetBackend(multiBackend)
	logger = newLogger
}

// initFileBackend creates the file logging backend. Creates the log
// directory and truncates the log file on startup.
func initFileBackend() logging.Backend {
	logDir := config.GetLogFolder()
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logDir, err)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	backend := logging.NewLogBackend(file, "", 0)
	return logging.NewBackendFormatter(backend, newFormatter(true))
}

// newFormatter creates a log formatter with optional timestamp.
func newFormatter(withTime bool) logging.Formatter {
	format := `%{level} - %{message}`
	if withTime {
		format = `%{time:` + timeFormat + `} %{level} - %{message}`
	}
	return logging.MustStringFormatter(format)
}

// CloseLogger closes the log file. Should be called during shutdown.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// ensure logging works before InitLogger runs, e.g. in tests.
func get() *logging.Logger {
	if logger == nil {
		logger = logging.MustGetLogger("sweet-shop")
	}
	return logger
}

// Debug logs a debug message.
func Debug(args ...any) {
	get().Debug(args...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	get().Debugf(format, args...)
}

// Info logs an info message.
func Info(args ...any) {
	get().Info(args...)
}

// Infof logs a formatted info message.
func Infof(format string, args ...any) {
	get().Infof(format, args...)
}

// Warning logs a warning message.
func Warning(args ...any) {
	get().Warning(args...)
}

// Warningf logs a formatted warning message.
func Warningf(format string, args ...any) {
	get().Warningf(format, args...)
}

// Error logs an error message.
func Error(args ...any) {
	get().Error(args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...any) {
	get().Errorf(format, args...)
}
