// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels in one table that drives their names,
//              short labels, console colors and parsing aliases.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Table driven levels, no audit level

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelOff disables all output
	LevelOff
)

type levelSpec struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levelSpecs = map[Level]levelSpec{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelOff:   {"off", "???", "\033[0m", []string{"none", "silent"}},
}

const colorReset = "\033[0m"

// String returns the lower case level name
func (l Level) String() string {
	if spec, ok := levelSpecs[l]; ok {
		return spec.name
	}
	return "unknown"
}

// ShortString returns the three letter label used by the text formatter
func (l Level) ShortString() string {
	if spec, ok := levelSpecs[l]; ok {
		return spec.short
	}
	return "???"
}

// Color returns the ANSI color sequence of the level
func (l Level) Color() string {
	if spec, ok := levelSpecs[l]; ok {
		return spec.color
	}
	return colorReset
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l != LevelOff && minLevel != LevelOff && l >= minLevel
}

// ParseLevel accepts a level name or one of its aliases, ignoring case
func ParseLevel(level string) (Level, error) {
	needle := strings.ToLower(strings.TrimSpace(level))
	for l, spec := range levelSpecs {
		if needle == spec.name {
			return l, nil
		}
		for _, alias := range spec.aliases {
			if needle == alias {
				return l, nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports a level or format name that could not be parsed
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is warn, so a console session only shows problems
func DefaultLevel() Level {
	return LevelWarn
}
