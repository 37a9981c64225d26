// ABOUTME: Logrus-backed logger implementation with text or JSON output
// ABOUTME: Optionally tees entries into a size-rotated file through lumberjack

package logrus

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error; info when empty or unknown
	Level string

	// Format is "json" or "text"
	Format string

	// File, when set, also receives every entry with size based rotation
	File string

	// Output overrides stderr, mainly for tests
	Output io.Writer
}

// Logger implements the Logger interface on top of logrus
type Logger struct {
	entry  *log.Logger
	rotate *lumberjack.Logger
}

// New creates a logger from options
func New(opts Options) *Logger {
	l := log.New()

	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l.SetLevel(level)

	if opts.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := &Logger{entry: l}
	if opts.File != "" {
		logger.rotate = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, logger.rotate)
	}
	l.SetOutput(out)

	return logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Writer returns a writer that logs each line at info level, for adapting
// libraries that expect an io.Writer
func (l *Logger) Writer() *io.PipeWriter {
	return l.entry.Writer()
}

// Close flushes and closes the rotating file, if any
func (l *Logger) Close() error {
	if l.rotate != nil {
		return l.rotate.Close()
	}
	return nil
}
