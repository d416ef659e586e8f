/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging for Guesstimate. Structured logrus logging to stderr, optionally
tee'd into a timestamped file per run, in JSON, text or custom format. Old run
files beyond MaxFiles are removed on Close.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

const filePrefix = "guesstimate_"

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"` // empty disables the log file
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Caller    bool      `json:"caller"`
	Colors    bool      `json:"colors"`
}

// DefaultConfig returns the configuration used when none is given
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		MaxFiles:  10,
		Timestamp: true,
		Colors:    true,
	}
}

// Validate checks the LoggerConfig for invalid values
func (c *LoggerConfig) Validate() error {
	if c.OutputDir != "" && c.MaxFiles <= 0 {
		return errors.New("max_files must be positive")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
		// ok
	default:
		return errors.WithHint(errors.Newf("unsupported log format: %s", c.Format),
			"use json, text or custom")
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return errors.WithHint(errors.Newf("unsupported log level: %s", c.Level),
			"use debug, info, warn or error")
	}
	return nil
}

// Logger wraps a logrus logger and its optional run file
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	filePath   string
	startTime  time.Time
}

// NewLogger creates a new logger writing to stderr
func NewLogger(config *LoggerConfig) (*Logger, error) {
	return NewLoggerTo(config, os.Stderr)
}

// NewLoggerTo creates a new logger writing to console, plus the run file if
// an output directory is configured.
func NewLoggerTo(config *LoggerConfig, console io.Writer) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	l.logger.SetOutput(console)

	if err := l.setup(console); err != nil {
		return nil, errors.Wrap(err, "failed to setup logger")
	}
	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup(console io.Writer) error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)
	l.logger.SetReportCaller(l.config.Caller)

	if err := l.setFormatter(); err != nil {
		return err
	}
	return l.setupFileOutput(console)
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	callerPrettyfier := func(f *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
	}

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    l.config.Timestamp,
			TimestampFormat:  time.RFC3339,
			ForceColors:      l.config.Colors,
			DisableColors:    !l.config.Colors,
			CallerPrettyfier: callerPrettyfier,
		})

	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: l.config.Timestamp,
			Caller:    l.config.Caller,
			Colors:    l.config.Colors,
		})

	default:
		return errors.Newf("unsupported log format: %s", l.config.Format)
	}

	return nil
}

// setupFileOutput opens the run file and tees console output into it
func (l *Logger) setupFileOutput(console io.Writer) error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}

	timestamp := l.startTime.Format("2006-01-02_15-04-05.000000")
	path := filepath.Join(l.config.OutputDir, filePrefix+timestamp+".log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}

	l.fileHandle = file
	l.filePath = path
	l.logger.SetOutput(io.MultiWriter(console, file))

	l.logger.WithFields(logrus.Fields{
		"log_file": path,
		"level":    l.config.Level,
		"format":   l.config.Format,
	}).Debug("Logging initialized")

	return nil
}

// cleanup removes the oldest run files beyond MaxFiles
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, filePrefix+"*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}

	// names embed the start time, so lexical order is age order
	sort.Strings(files)
	for _, file := range files[:len(files)-l.config.MaxFiles] {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}

// FilePath returns the run file path, or "" when file logging is off
func (l *Logger) FilePath() string {
	return l.filePath
}

// Close closes the run file and prunes old ones
func (l *Logger) Close() error {
	var closeErr error
	if l.fileHandle != nil {
		if err := l.fileHandle.Close(); err != nil {
			closeErr = errors.Wrap(err, "failed to close log file")
		}
		l.fileHandle = nil
	}
	if err := l.cleanup(); err != nil {
		return errors.CombineErrors(closeErr, errors.Wrap(err, "failed to cleanup log files"))
	}
	return closeErr
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}
