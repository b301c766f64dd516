// File: stringx.go
// Title: String Utility Functions
// Description: Blank checks, defaults and rune-aware padding used by the
//              message catalogs and the interactive form.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Reduced to the helpers used by i18n and the form

// Package stringx provides string helpers that extend the standard library.
package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FromBlankDefault returns defaultValue if s is blank, s otherwise.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// PadRight pads s with pad to width runes. Strings already at least width
// runes long are returned unchanged. Width counts runes, not bytes, so
// Cyrillic labels line up with ASCII ones.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-runeCount)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := runeCount; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// MaxRuneWidth returns the rune length of the longest string.
func MaxRuneWidth(values ...string) int {
	width := 0
	for _, v := range values {
		if n := utf8.RuneCountInString(v); n > width {
			width = n
		}
	}
	return width
}
