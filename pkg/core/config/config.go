package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
	mdwlog "github.com/msto63/euler/foundation/core/log"
	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
)

// LocaleAuto selects the locale from LC_ALL, LC_MESSAGES or LANG
const LocaleAuto = "auto"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Format  FormatConfig  `toml:"format" yaml:"format"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	Locale    string `toml:"locale" yaml:"locale"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// FormatConfig holds number formatting settings
type FormatConfig struct {
	Precision        int    `toml:"precision" yaml:"precision"`
	DecimalSeparator string `toml:"decimal_separator" yaml:"decimal_separator"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, parseError(err, path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to read config").WithCode(mdwerror.CodeIOError).WithOperation("config.Load").WithDetail("path", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, parseError(err, path)
		}
	default:
		return nil, mdwerror.New("unsupported config format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("extension", ext)
	}

	// Apply defaults
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func parseError(err error, path string) error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Load").
		WithDetail("path", path)
}

// LoadFromEnv loads configuration from the EULER_CONFIG environment variable
// or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("EULER_CONFIG")
	if path == "" {
		// Try default locations
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set EULER_CONFIG or create configs/euler.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/euler.toml",
		"./euler.toml",
		filepath.Join(os.Getenv("HOME"), ".config/euler/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "euler"
	}
	if c.General.Locale == "" {
		c.General.Locale = "ru"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Format
	if c.Format.Precision == 0 {
		c.Format.Precision = mdwmathx.DefaultPrecision
	}
	if c.Format.DecimalSeparator == "" {
		c.Format.DecimalSeparator = mdwmathx.DefaultDecimalSeparator
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.General.Locale != LocaleAuto {
		if err := mdwi18n.ValidateLocale(c.General.Locale); err != nil {
			return invalid("general.locale", c.General.Locale, err)
		}
	}
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.Format.Precision < 1 || c.Format.Precision > 17 {
		return invalid("format.precision", c.Format.Precision, nil)
	}
	if strings.TrimSpace(c.Format.DecimalSeparator) == "" {
		return invalid("format.decimal_separator", c.Format.DecimalSeparator, nil)
	}
	return nil
}

func invalid(key string, value interface{}, cause error) error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, "invalid config value")
	} else {
		err = mdwerror.New("invalid config value")
	}
	return err.WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// NumberFormat returns the number format described by the [format] section
func (c *Config) NumberFormat() mdwmathx.NumberFormat {
	return mdwmathx.NumberFormat{
		Precision:        c.Format.Precision,
		DecimalSeparator: c.Format.DecimalSeparator,
	}
}

// ResolveLocale returns the configured locale, or for "auto" the first
// non-empty value of LC_ALL, LC_MESSAGES and LANG
func (c *Config) ResolveLocale() string {
	if c.General.Locale != LocaleAuto {
		return c.General.Locale
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
