// File: entry.go
// Title: Log Entry Structure
// Description: Defines the Entry passed to formatters and the Fields map
//              that carries structured key-value data.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Entry without duration and user context

package log

import (
	"sort"
	"time"
)

// Entry is one log record as seen by a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
}

// Fields holds structured key-value data of an entry
type Fields map[string]interface{}

// Field returns a single-key Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Int returns a single-key Fields with an integer value
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields with the keys of f and others; later sets win
func (f Fields) Merge(others ...Fields) Fields {
	size := len(f)
	for _, o := range others {
		size += len(o)
	}

	merged := make(Fields, size)
	for _, set := range append([]Fields{f}, others...) {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    Fields{},
	}
}
