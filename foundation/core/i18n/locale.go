// File: locale.go
// Title: Locale Detection and Normalization
// Description: Detects the best catalog for POSIX locale values (LANG,
//              LC_ALL) and Accept-Language style preference lists, and
//              normalizes locale strings to "ll" or "ll-CC".
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: POSIX locale values, display names trimmed to shipped catalogs

package i18n

import (
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwstringx "github.com/msto63/euler/foundation/utils/stringx"
)

// LocalePreference represents a locale preference with quality score
type LocalePreference struct {
	Locale  string  // Locale code (e.g., "en", "en-US", "ru_RU.UTF-8")
	Quality float64 // Quality score (0.0 - 1.0)
}

// DetectLocale returns the best loaded locale for value, which may be a
// POSIX locale ("ru_RU.UTF-8") or a preference list ("en-US,ru;q=0.8").
// The default locale is returned when nothing matches.
func (m *Manager) DetectLocale(value string) string {
	if mdwstringx.IsBlank(value) {
		return m.GetDefaultLocale()
	}

	preferences := parsePreferences(value)
	if len(preferences) == 0 {
		return m.GetDefaultLocale()
	}

	if match := findBestLocaleMatch(preferences, m.GetAvailableLocales()); match != "" {
		return match
	}

	return m.GetDefaultLocale()
}

// parsePreferences parses a comma separated preference list, highest quality first
func parsePreferences(value string) []LocalePreference {
	var preferences []LocalePreference

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		locale := part
		quality := 1.0

		if idx := strings.Index(part, ";"); idx >= 0 {
			locale = strings.TrimSpace(part[:idx])
			for _, param := range strings.Split(part[idx+1:], ";") {
				param = strings.TrimSpace(param)
				if strings.HasPrefix(param, "q=") {
					if q, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64); err == nil {
						quality = q
					}
					break
				}
			}
		}

		normalized := NormalizeLocale(locale)
		if normalized == "" {
			continue
		}

		preferences = append(preferences, LocalePreference{
			Locale:  normalized,
			Quality: quality,
		})
	}

	sort.SliceStable(preferences, func(i, j int) bool {
		return preferences[i].Quality > preferences[j].Quality
	})

	return preferences
}

// findBestLocaleMatch matches preferences against loaded locales: exact,
// then base language, then a regional variant of the base language.
func findBestLocaleMatch(preferences []LocalePreference, availableLocales []string) string {
	for _, pref := range preferences {
		for _, available := range availableLocales {
			if strings.EqualFold(pref.Locale, available) {
				return available
			}
		}

		base, _ := SplitLocale(pref.Locale)
		for _, available := range availableLocales {
			if strings.EqualFold(available, base) {
				return available
			}
		}
		for _, available := range availableLocales {
			if strings.HasPrefix(strings.ToLower(available), base+"-") {
				return available
			}
		}
	}

	return ""
}

// NormalizeLocale normalizes a locale string to "ll" or "ll-CC".
// Encoding and modifier suffixes are dropped; "C" and "POSIX" yield "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if idx := strings.IndexAny(locale, ".@"); idx >= 0 {
		locale = locale[:idx]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(strings.ToLower(locale), "_", "-"), "-")

	language := parts[0]
	if len(language) != 2 && len(language) != 3 {
		return ""
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return language + "-" + strings.ToUpper(parts[1])
	}

	return language
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if mdwstringx.IsBlank(locale) {
		return mdwerror.New("locale cannot be empty").WithCode(mdwerror.CodeValidationFailed).WithOperation("i18n.ValidateLocale")
	}

	if NormalizeLocale(locale) == "" {
		return mdwerror.New("invalid locale format").WithCode(mdwerror.CodeValidationFailed).WithOperation("i18n.ValidateLocale").WithDetail("locale", locale).WithDetail("expected_format", "e.g., 'ru', 'en-US'")
	}

	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (language, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	language, country, _ = strings.Cut(normalized, "-")
	return language, country
}

// GetLocaleDisplayName returns a human-readable display name for a locale
func GetLocaleDisplayName(locale string) string {
	displayNames := map[string]string{
		"en":    "English",
		"en-US": "English (United States)",
		"en-GB": "English (United Kingdom)",
		"ru":    "Русский",
		"ru-RU": "Русский (Россия)",
	}

	normalized := NormalizeLocale(locale)
	if displayName, exists := displayNames[normalized]; exists {
		return displayName
	}

	if normalized != "" {
		return normalized
	}
	return locale
}
