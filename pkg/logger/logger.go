// Package logger provides leveled logging with file rotation. A single
// process-wide instance is initialized from config at startup; the package
// functions are safe no-ops before that.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents the severity of a log message.
type Level int

// Severity levels, lowest first.
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

// ParseLevel converts a config string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Logger writes level-filtered messages to stdout and a rotating log file.
type Logger struct {
	out   map[Level]*log.Logger
	level Level
	mu    sync.RWMutex
}

var instance *Logger
var once sync.Once

// Init initializes the global logger. Subsequent calls are ignored.
func Init(path string, level Level, maxSize, maxBackups, maxAge int, compress bool) {
	once.Do(func() {
		instance = New(path, level, maxSize, maxBackups, maxAge, compress)
	})
}

// New creates a logger writing to path with lumberjack rotation.
func New(path string, level Level, maxSize, maxBackups, maxAge int, compress bool) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("cannot create log directory: %v", err)
	}

	w := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})

	flags := log.LstdFlags | log.Lshortfile
	return &Logger{
		level: level,
		out: map[Level]*log.Logger{
			DEBUG: log.New(w, "[DEBUG] ", flags),
			INFO:  log.New(w, "[INFO] ", flags),
			WARN:  log.New(w, "[WARN] ", flags),
			ERROR: log.New(w, "[ERROR] ", flags),
			FATAL: log.New(w, "[FATAL] ", flags),
		},
	}
}

// SetLevel changes the minimum level emitted.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	l.mu.RLock()
	min := l.level
	l.mu.RUnlock()
	if level < min {
		return
	}
	l.out[level].Output(3, fmt.Sprintf(format, v...))
	if level == FATAL {
		os.Exit(1)
	}
}

// Debugf logs a formatted debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }

// Infof logs a formatted info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.logf(INFO, format, v...) }

// Warnf logs a formatted warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(WARN, format, v...) }

// Errorf logs a formatted error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// Fatalf logs a formatted fatal-level message and exits.
func (l *Logger) Fatalf(format string, v ...interface{}) { l.logf(FATAL, format, v...) }

// Global convenience functions. No-ops until Init runs.

// Debugf logs a formatted debug-level message using the global instance.
func Debugf(format string, v ...interface{}) {
	if instance != nil {
		instance.Debugf(format, v...)
	}
}

// Infof logs a formatted info-level message using the global instance.
func Infof(format string, v ...interface{}) {
	if instance != nil {
		instance.Infof(format, v...)
	}
}

// Warnf logs a formatted warning-level message using the global instance.
func Warnf(format string, v ...interface{}) {
	if instance != nil {
		instance.Warnf(format, v...)
	}
}

// Errorf logs a formatted error-level message using the global instance.
func Errorf(format string, v ...interface{}) {
	if instance != nil {
		instance.Errorf(format, v...)
	}
}

// Fatalf logs a formatted fatal-level message and exits using the global instance.
func Fatalf(format string, v ...interface{}) {
	if instance != nil {
		instance.Fatalf(format, v...)
	}
}
