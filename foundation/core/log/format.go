// File: format.go
// Title: Log Output Formatters
// Description: Implements the JSON, text, console and logfmt formatters.
//              Line oriented formats print fields in sorted key order.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Sorted field output, request id only context

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
	FormatLogfmt
)

var formatNames = []string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
	FormatLogfmt:  "logfmt",
}

// String returns the name accepted by ParseFormat
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat parses a format name. Unknown names yield FormatText and an error.
func ParseFormat(format string) (Format, error) {
	needle := strings.ToLower(strings.TrimSpace(format))
	for i, name := range formatNames {
		if name == needle {
			return Format(i), nil
		}
	}
	return FormatText, &ParseError{Input: format, Type: "format"}
}

// Formatter renders an entry as one output line including the newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns a formatter for format; unknown values get JSON
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter. Fields share the top level with the fixed keys,
// which take precedence.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	record := entry.Fields.Merge(Fields{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	})
	if entry.Logger != "" {
		record["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		record["request_id"] = entry.RequestID
	}

	if entry.Error != nil {
		record["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if details, err := m.MarshalJSON(); err == nil {
				record["error_details"] = json.RawMessage(details)
			}
		}
	}

	line, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter writes "time [LVL] {logger} (req=id) message [k=v ...] error=..."
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with clock timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry) + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry) string {
	var parts []string
	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}
	parts = append(parts, "["+entry.Level.ShortString()+"]")
	if entry.Logger != "" {
		parts = append(parts, "{"+entry.Logger+"}")
	}
	if entry.RequestID != "" {
		parts = append(parts, "(req="+entry.RequestID+")")
	}
	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		pairs := make([]string, 0, len(entry.Fields))
		for _, k := range entry.Fields.Keys() {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, "["+strings.Join(pairs, " ")+"]")
	}
	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	return strings.Join(parts, " ")
}

// ConsoleFormatter is the text format wrapped in the level color
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a colored console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line := f.line(entry)
	if !f.DisableColors {
		line = entry.Level.Color() + line + colorReset
	}
	return []byte(line + "\n"), nil
}

// LogfmtFormatter writes key=value pairs; string values are quoted
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a logfmt formatter with RFC 3339 timestamps
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "timestamp=%s level=%s message=%q",
		entry.Timestamp.Format(f.TimestampFormat), entry.Level, entry.Message)

	if entry.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", entry.Logger)
	}
	if entry.RequestID != "" {
		fmt.Fprintf(&b, " request_id=%s", entry.RequestID)
	}
	for _, k := range entry.Fields.Keys() {
		if s, ok := entry.Fields[k].(string); ok {
			fmt.Fprintf(&b, " %s=%q", k, s)
		} else {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}
	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}
