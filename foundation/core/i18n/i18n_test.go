// File: i18n_test.go
// Title: Internationalization Tests
// Description: Tests for catalog loading from embedded and directory
//              sources, key resolution, fallback, templates and locale
//              detection.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: fstest based catalogs, POSIX locale detection

package i18n

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/euler/foundation/core/error"
)

const ruCatalog = `
[prompt]
real_first = "Введите действительную часть первого числа: "

[label]
sum = "a + b = "
greeting = "Привет, {{.Name}}!"
`

const enCatalog = `
prompt:
  real_first: "Enter the real part of the first number: "
label:
  sum: "a + b = "
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"ru.toml":   {Data: []byte(ruCatalog)},
		"en.yaml":   {Data: []byte(enCatalog)},
		"README.md": {Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "ru", FS: testFS()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetAvailableLocales(); !reflect.DeepEqual(got, []string{"en", "ru"}) {
		t.Errorf("GetAvailableLocales() = %v", got)
	}
	if m.GetCurrentLocale() != "ru" {
		t.Errorf("GetCurrentLocale() = %q, want ru", m.GetCurrentLocale())
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		wantCode mdwerror.Code
	}{
		{
			name:     "empty default locale",
			options:  Options{FS: testFS()},
			wantCode: mdwerror.CodeValidationFailed,
		},
		{
			name:     "missing default catalog",
			options:  Options{DefaultLocale: "de", FS: testFS()},
			wantCode: mdwerror.CodeNotFound,
		},
		{
			name:     "missing directory",
			options:  Options{DefaultLocale: "ru", LocalesDir: filepath.Join(t.TempDir(), "nope")},
			wantCode: mdwerror.CodeNotFound,
		},
		{
			name: "broken TOML",
			options: Options{DefaultLocale: "ru", FS: fstest.MapFS{
				"ru.toml": {Data: []byte("[prompt\nx = ")},
			}},
			wantCode: mdwerror.CodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.options)
			if err == nil {
				t.Fatal("New() should fail")
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("New() error = %v, want code %v", err, tt.wantCode)
			}
		})
	}
}

func TestNew_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ru.toml"), []byte(ruCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(Options{DefaultLocale: "ru", LocalesDir: dir, Format: FormatTOML})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := m.T("label.sum"); got != "a + b = " {
		t.Errorf("T(label.sum) = %q", got)
	}
}

func TestFormatFilter(t *testing.T) {
	_, err := New(Options{DefaultLocale: "en", FS: testFS(), Format: FormatTOML})
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("TOML-only manager should not load en.yaml, err = %v", err)
	}
}

func TestT(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"keeps trailing space", "ru", "prompt.real_first", "Введите действительную часть первого числа: "},
		{"yaml catalog", "en", "prompt.real_first", "Enter the real part of the first number: "},
		{"falls back to default", "en", "label.greeting", "Привет, {{.Name}}!"},
		{"missing key", "ru", "label.unknown", "[label.unknown]"},
		{"non-leaf key", "ru", "label", "[label]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.WithLocale(tt.locale).T(tt.key); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestT_Template(t *testing.T) {
	m := newTestManager(t)

	if got := m.T("label.greeting", map[string]interface{}{"Name": "Эйлер"}); got != "Привет, Эйлер!" {
		t.Errorf("T() = %q", got)
	}

	if _, err := m.TryT("label.greeting", map[string]interface{}{}); err == nil {
		t.Error("TryT() should fail on missing template data")
	}
}

func TestTWithFallback(t *testing.T) {
	m := newTestManager(t)

	if got := m.TWithFallback("nope", "fallback"); got != "fallback" {
		t.Errorf("TWithFallback() = %q", got)
	}
	if got := m.TWithFallback("label.sum", "fallback"); got != "a + b = " {
		t.Errorf("TWithFallback() = %q", got)
	}
}

func TestSetLocale(t *testing.T) {
	m := newTestManager(t)

	if err := m.SetLocale("en"); err != nil {
		t.Fatalf("SetLocale(en) error = %v", err)
	}
	if m.GetCurrentLocale() != "en" {
		t.Errorf("GetCurrentLocale() = %q", m.GetCurrentLocale())
	}

	err := m.SetLocale("fr")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("SetLocale(fr) error = %v", err)
	}
}

func TestWithLocale_DoesNotMutate(t *testing.T) {
	m := newTestManager(t)
	en := m.WithLocale("en")

	if en.GetCurrentLocale() != "en" || m.GetCurrentLocale() != "ru" {
		t.Errorf("locales = %q/%q, want en/ru", en.GetCurrentLocale(), m.GetCurrentLocale())
	}
	if m.WithLocale("fr").GetCurrentLocale() != "ru" {
		t.Error("unknown locale should keep the current locale")
	}
}

func TestHasTranslationAndKeys(t *testing.T) {
	m := newTestManager(t)

	if !m.HasTranslation("label.sum") || m.HasTranslation("label.nope") {
		t.Error("HasTranslation() mismatch")
	}
	if !m.HasLocale("en") || m.HasLocale("fr") {
		t.Error("HasLocale() mismatch")
	}

	want := []string{"label.greeting", "label.sum", "prompt.real_first"}
	if got := m.GetTranslationKeys("ru"); !reflect.DeepEqual(got, want) {
		t.Errorf("GetTranslationKeys() = %v, want %v", got, want)
	}
	if m.GetTranslationKeys("fr") != nil {
		t.Error("GetTranslationKeys(fr) should be nil")
	}
}

func TestDetectLocale(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		input string
		want  string
	}{
		{"", "ru"},
		{"C", "ru"},
		{"POSIX", "ru"},
		{"en_US.UTF-8", "en"},
		{"ru_RU.UTF-8", "ru"},
		{"de_DE@euro", "ru"},
		{"de-DE,en;q=0.7,ru;q=0.9", "ru"},
		{"fr,en-GB;q=0.5", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.DetectLocale(tt.input); got != tt.want {
				t.Errorf("DetectLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ru_RU.UTF-8", "ru-RU"},
		{"EN-us", "en-US"},
		{"en", "en"},
		{"sr@latin", "sr"},
		{"C.UTF-8", ""},
		{"x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLocale(tt.input); got != tt.want {
				t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLocaleAndDisplayName(t *testing.T) {
	lang, country := SplitLocale("ru_RU")
	if lang != "ru" || country != "RU" {
		t.Errorf("SplitLocale() = %q, %q", lang, country)
	}

	if got := GetLocaleDisplayName("ru"); got != "Русский" {
		t.Errorf("GetLocaleDisplayName(ru) = %q", got)
	}
	if got := GetLocaleDisplayName("pt-BR"); got != "pt-BR" {
		t.Errorf("GetLocaleDisplayName(pt-BR) = %q", got)
	}

	if ValidateLocale("") == nil || ValidateLocale("x") == nil || ValidateLocale("en-US") != nil {
		t.Error("ValidateLocale() mismatch")
	}
}
