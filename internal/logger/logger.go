package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	Logger *log.Logger

	initOnce sync.Once
	logFile  *os.File
)

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetLevel(log.InfoLevel)
}

// ParseLevel maps a level name to a log level. Unknown or empty names fall
// back to INFO.
func ParseLevel(name string) log.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "FATAL":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Init configures the process-wide logger. Only the first call has an effect.
// level overrides the LOG_LEVEL environment variable when set. When file is
// not empty, log lines are also appended to that file.
func Init(level, file string) error {
	var err error
	initOnce.Do(func() {
		if level == "" {
			level = os.Getenv("LOG_LEVEL")
		}

		var out io.Writer = os.Stderr
		if file != "" {
			if err = os.MkdirAll(filepath.Dir(file), 0750); err != nil {
				err = fmt.Errorf("failed to create log directory: %w", err)
				return
			}
			logFile, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				err = fmt.Errorf("failed to open log file: %w", err)
				return
			}
			out = io.MultiWriter(os.Stderr, logFile)
		}

		Logger = log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			Level:           ParseLevel(level),
		})
	})
	return err
}

// Close releases the log file opened by Init, if any.
func Close() error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// Convenience functions for common operations
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

