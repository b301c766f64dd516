package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/euler/foundation/core/error"
	mdwi18n "github.com/msto63/euler/foundation/core/i18n"
	mdwlog "github.com/msto63/euler/foundation/core/log"
	"github.com/msto63/euler/internal/demo"
	"github.com/msto63/euler/pkg/core/config"
	"github.com/msto63/euler/pkg/core/logging"
)

var (
	cfgFile string
	locale  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "euler",
	Short: "euler - Werkbank fuer komplexe Zahlen",
	Long: `euler liest zwei komplexe Zahlen ein und fuehrt alle Operationen
des Zahlentyps vor: Arithmetik, Konjugation, Potenz, Wurzel, Vergleiche,
Inkrement/Dekrement sowie die algebraische, trigonometrische und
exponentielle Darstellung.

Ohne Unterbefehl startet die Konsolensitzung (wie "euler demo").

Befehle:
  demo     - Konsolensitzung auf stdin/stdout
  calc     - Einzelne Operation ueber Flags
  forms    - Darstellungen einer Zahl
  tui      - Interaktives Formular
  version  - Versionsinformationen`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("Befehl fehlgeschlagen", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $EULER_CONFIG oder ./configs/euler.toml)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Sprache der Ausgabe (ru, en oder auto)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Log-Level debug)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// app bundles what every command needs
type app struct {
	cfg     *config.Config
	logger  *mdwlog.Logger
	catalog *mdwi18n.Manager
}

// loadApp reads the configuration, applies the persistent flags and builds
// the logger and the message catalog
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if locale != "" {
		cfg.General.Locale = locale
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       cfg.General.LogLevel,
		Format:      cfg.General.LogFormat,
		Output:      cmd.ErrOrStderr(),
	})

	catalog, err := newCatalog(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", mdwlog.Fields{
		"config":  cfgFile,
		"locale":  catalog.GetCurrentLocale(),
		"command": cmd.Name(),
	})

	return &app{cfg: cfg, logger: logger, catalog: catalog}, nil
}

// loadConfig loads --config when given. Otherwise it searches the default
// locations, falling back to the built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// newCatalog selects the configured locale. "auto" matches the environment
// against the embedded catalogs and never fails.
func newCatalog(cfg *config.Config) (*mdwi18n.Manager, error) {
	if cfg.General.Locale != config.LocaleAuto {
		return demo.NewCatalog(cfg.General.Locale)
	}

	catalog, err := demo.NewCatalog("")
	if err != nil {
		return nil, err
	}
	if err := catalog.SetLocale(catalog.DetectLocale(cfg.ResolveLocale())); err != nil {
		return nil, err
	}
	return catalog, nil
}
