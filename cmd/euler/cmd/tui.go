package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/euler/internal/tui/demoform"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet das interaktive Formular",
	Long: `Startet die Terminal User Interface (TUI) von euler.

Das Formular fragt Real- und Imaginaerteil beider Zahlen ab und zeigt
danach das vollstaendige Protokoll in einem scrollbaren Bereich.

Navigation:
  Tab       - Naechstes Feld
  Shift+Tab - Vorheriges Feld
  Enter     - Naechstes Feld / Auswerten
  Esc       - Zurueck zum Formular
  Ctrl+C    - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	model, err := demoform.NewModel(demoform.Config{
		Catalog: a.catalog,
		Format:  a.cfg.NumberFormat(),
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
