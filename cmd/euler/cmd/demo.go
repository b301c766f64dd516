package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/euler/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Startet die Konsolensitzung",
	Long: `Fragt Real- und Imaginaerteil von zwei komplexen Zahlen ab und gibt
das vollstaendige Protokoll aller Operationen aus.

Die Eingabe wird durch Leerraum getrennt gelesen, z.B.:
  echo "3 4 1 2" | euler demo

Eine ungueltige Eingabe setzt diese und alle folgenden Werte auf 0.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := demo.NewSession(demo.Options{
		Input:   cmd.InOrStdin(),
		Output:  cmd.OutOrStdout(),
		Catalog: a.catalog,
		Format:  a.cfg.NumberFormat(),
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	return session.Run(ctx)
}
