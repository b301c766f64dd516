// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the Manager that loads TOML and YAML catalogs from
//              an fs.FS, resolves dotted keys with default-locale fallback and
//              renders template placeholders.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Catalogs from fs.FS (embedded or directory), WithLocale clones

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwstringx "github.com/msto63/euler/foundation/utils/stringx"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML accepts only .toml files
	FormatTOML

	// FormatYAML accepts only .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// extensions returns the file extensions accepted for the format
func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "ru")
	FS            fs.FS  // Catalog source; takes precedence over LocalesDir
	LocalesDir    string // Directory containing catalog files
	Format        Format // File format (default: auto-detect)
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// Manager manages message catalogs for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	format        Format
	translations  map[string]TranslationData
	templates     map[string]*template.Template
}

// New creates a new i18n manager and loads every catalog it finds
func New(options Options) (*Manager, error) {
	if mdwstringx.IsBlank(options.DefaultLocale) {
		return nil, mdwerror.New("default locale cannot be empty").WithCode(mdwerror.CodeValidationFailed).WithOperation("i18n.New")
	}

	source := options.FS
	if source == nil {
		dir := mdwstringx.FromBlankDefault(options.LocalesDir, "./locales")
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, mdwerror.New("locales directory not found").WithCode(mdwerror.CodeNotFound).WithOperation("i18n.New").WithDetail("directory", dir)
		}
		source = os.DirFS(dir)
	}

	manager := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		format:        options.Format,
		translations:  make(map[string]TranslationData),
		templates:     make(map[string]*template.Template),
	}

	if err := manager.loadAll(source); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").WithCode(mdwerror.CodeConfigError).WithOperation("i18n.loadAll")
	}

	return manager, nil
}

// loadAll loads every supported catalog file at the root of source
func (m *Manager) loadAll(source fs.FS) error {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if !m.supports(ext) {
			continue
		}

		locale := strings.TrimSuffix(name, path.Ext(name))
		if mdwstringx.IsBlank(locale) {
			continue
		}

		data, err := parseCatalog(source, name, ext)
		if err != nil {
			return err
		}
		m.translations[locale] = data
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return mdwerror.New("default locale not found").WithCode(mdwerror.CodeNotFound).WithDetail("locale", m.defaultLocale)
	}

	return nil
}

func (m *Manager) supports(ext string) bool {
	for _, supported := range m.format.extensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseCatalog decodes one catalog file
func parseCatalog(source fs.FS, name, ext string) (TranslationData, error) {
	content, err := fs.ReadFile(source, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", name, err)
	}

	var data TranslationData
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse TOML catalog").WithCode(mdwerror.CodeInvalidFormat).WithDetail("file", name)
		}
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse YAML catalog").WithCode(mdwerror.CodeInvalidFormat).WithDetail("file", name)
		}
	}

	if data == nil {
		data = TranslationData{}
	}
	return data, nil
}

// T translates a key with optional template data. Unknown keys render as "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	translation, ok := m.lookup(key, m.currentLocale)
	m.mu.RUnlock()

	if !ok {
		return "", mdwerror.New("translation not found").WithCode(mdwerror.CodeNotFound).WithOperation("i18n.TryT").WithDetail("key", key)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.render(key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").WithCode(mdwerror.CodeInvalidFormat).WithOperation("i18n.render").WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// TWithFallback translates a key and returns fallbackMsg if it is missing
func (m *Manager) TWithFallback(key string, fallbackMsg string, data ...map[string]interface{}) string {
	if translation, err := m.TryT(key, data...); err == nil {
		return translation
	}
	return fallbackMsg
}

// lookup resolves key in locale, falling back to the default locale.
// Callers hold m.mu.
func (m *Manager) lookup(key, locale string) (string, bool) {
	if translations, exists := m.translations[locale]; exists {
		if value, ok := nestedValue(translations, key); ok {
			return value, true
		}
	}

	if locale != m.defaultLocale {
		if translations, exists := m.translations[m.defaultLocale]; exists {
			return nestedValue(translations, key)
		}
	}

	return "", false
}

// nestedValue retrieves a leaf value using dot notation
func nestedValue(data map[string]interface{}, key string) (string, bool) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return "", false
		}

		if i == len(keys)-1 {
			switch v := value.(type) {
			case map[string]interface{}, TranslationData:
				return "", false
			case string:
				return v, true
			default:
				return fmt.Sprintf("%v", v), true
			}
		}

		switch next := value.(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return "", false
		}
	}

	return "", false
}

// render renders a translation template with data, caching compiled templates
func (m *Manager) render(key, text string, data map[string]interface{}) (string, error) {
	cacheKey := m.GetCurrentLocale() + ":" + key

	m.mu.Lock()
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=error").Parse(text)
		if err != nil {
			m.mu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[cacheKey] = tmpl
	}
	m.mu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.translations[locale]; !exists {
		return mdwerror.New("locale not available").WithCode(mdwerror.CodeNotFound).WithOperation("i18n.SetLocale").WithDetail("locale", locale)
	}

	m.currentLocale = locale
	return nil
}

// WithLocale returns a manager sharing the catalogs with a different current
// locale. Unknown locales keep the current one.
func (m *Manager) WithLocale(locale string) *Manager {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := &Manager{
		defaultLocale: m.defaultLocale,
		currentLocale: m.currentLocale,
		format:        m.format,
		translations:  m.translations,
		templates:     make(map[string]*template.Template),
	}
	if _, exists := m.translations[locale]; exists {
		clone.currentLocale = locale
	}
	return clone
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns a sorted list of all loaded locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}

	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is available
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.translations[locale]
	return exists
}

// HasTranslation checks if a key resolves in the current locale or the default
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.lookup(key, m.currentLocale)
	return ok
}

// GetTranslationKeys returns all leaf keys of a locale in sorted order
func (m *Manager) GetTranslationKeys(locale string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translations := m.translations[locale]
	if translations == nil {
		return nil
	}

	keys := collectKeys(translations, "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch nested := value.(type) {
		case map[string]interface{}:
			keys = append(keys, collectKeys(nested, fullKey)...)
		case TranslationData:
			keys = append(keys, collectKeys(nested, fullKey)...)
		default:
			keys = append(keys, fullKey)
		}
	}

	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, format: %s, locales: %d}",
		m.defaultLocale, m.currentLocale, m.format, len(m.translations))
}
