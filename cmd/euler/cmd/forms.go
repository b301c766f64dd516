package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
)

var formsRe, formsIm float64

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Zeigt die Darstellungen einer komplexen Zahl",
	Long: `Gibt die algebraische, trigonometrische und exponentielle Form der
Zahl re + im*i aus, mit den Beschriftungen der gewaehlten Sprache.

Beispiel:
  euler forms --re 3 --im 4`,
	Args: cobra.NoArgs,
	RunE: runForms,
}

func init() {
	rootCmd.AddCommand(formsCmd)

	formsCmd.Flags().Float64Var(&formsRe, "re", 0, "Realteil")
	formsCmd.Flags().Float64Var(&formsIm, "im", 0, "Imaginaerteil")
}

func runForms(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	c := mdwmathx.NewComplex(formsRe, formsIm)
	format := a.cfg.NumberFormat()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n%s%s\n%s%s\n",
		a.catalog.T("section.algebraic"), format.Algebraic(c),
		a.catalog.T("section.trigonometric"), format.Trigonometric(c),
		a.catalog.T("section.exponential"), format.Exponential(c),
	)
	return err
}
