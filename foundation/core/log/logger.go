// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger with copy-on-write With* builders,
//              level filtering and structured error integration.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Synchronous writes only, error severity mapped to levels

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/euler/foundation/core/error"
)

// Logger writes structured entries. With* methods return modified copies,
// so a derived logger never changes its parent.
type Logger struct {
	mu sync.RWMutex

	level     Level
	formatter Formatter
	output    io.Writer
	name      string
	requestID string
	fields    Fields
}

// Config describes a logger for NewWithConfig
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // nil means os.Stderr
	Name   string
}

// New creates a JSON logger on stderr at DefaultLevel
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    output,
		name:      config.Name,
		fields:    Fields{},
	}
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelOff, Output: io.Discard})
}

// derive copies l and applies change to the copy
func (l *Logger) derive(change func(*Logger)) *Logger {
	l.mu.RLock()
	clone := &Logger{
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		name:      l.name,
		requestID: l.requestID,
		fields:    l.fields.Merge(),
	}
	l.mu.RUnlock()

	change(clone)
	return clone
}

func (l *Logger) WithLevel(level Level) *Logger {
	return l.derive(func(c *Logger) { c.level = level })
}

func (l *Logger) WithFormat(format Format) *Logger {
	return l.derive(func(c *Logger) { c.formatter = GetFormatter(format) })
}

func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	return l.derive(func(c *Logger) { c.formatter = formatter })
}

func (l *Logger) WithOutput(output io.Writer) *Logger {
	return l.derive(func(c *Logger) { c.output = output })
}

// WithName sets the component name shown as {name} or "logger"
func (l *Logger) WithName(name string) *Logger {
	return l.derive(func(c *Logger) { c.name = name })
}

// WithField adds a field to every entry of the copy
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.derive(func(c *Logger) { c.fields[key] = value })
}

// WithFields adds fields to every entry of the copy
func (l *Logger) WithFields(fields Fields) *Logger {
	return l.derive(func(c *Logger) { c.fields = c.fields.Merge(fields) })
}

// WithRequestID tags every entry of the copy; the CLI uses one id per run
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.derive(func(c *Logger) { c.requestID = requestID })
}

func (l *Logger) Trace(message string, fields ...Fields) { l.write(LevelTrace, message, nil, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.write(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.write(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.write(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.write(LevelError, message, nil, fields) }

// WarnWithErr logs at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.write(LevelWarn, message, err, fields)
}

// ErrorWithErr logs at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.write(LevelError, message, err, fields)
}

// LogError logs err with its code, operation and details as error_* fields.
// Low severity maps to info, medium to warn, everything else to error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	structured, ok := err.(*mdwerror.Error)
	if !ok {
		l.write(LevelError, err.Error(), err, nil)
		return
	}

	fields := Fields{
		"error_code":     structured.Code().String(),
		"error_severity": structured.Severity().String(),
	}
	if op := structured.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range structured.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch structured.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.write(level, structured.Message(), err, []Fields{fields})
}

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel changes the level in place, unlike WithLevel
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) write(level Level, message string, err error, fields []Fields) {
	l.mu.RLock()
	if !level.ShouldLog(l.level) {
		l.mu.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err
	entry.Fields = l.fields.Merge(fields...)

	formatter, output := l.formatter, l.output
	l.mu.RUnlock()

	if line, formatErr := formatter.Format(entry); formatErr == nil {
		_, _ = output.Write(line)
	}
}
