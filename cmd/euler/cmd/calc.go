package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/euler/foundation/core/log"
	mdwmathx "github.com/msto63/euler/foundation/utils/mathx"
)

var (
	calcARe, calcAIm     float64
	calcBRe, calcBIm     float64
	calcScalar           float64
	calcOp, calcRelation string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Fuehrt eine einzelne Operation aus",
	Long: `Wendet eine Rechenoperation (--op) oder einen Vergleich (--rel) auf
die Zahl a und den zweiten Operanden an.

Der zweite Operand ist die komplexe Zahl b (--b-re, --b-im) oder eine
reelle Zahl (--scalar). Vergleiche geben 1 oder 0 aus.

Operatoren:
  --op   add (+), sub (-), mul (*), div (/)
  --rel  eq (==), ne (!=), lt (<), gt (>), le (<=), ge (>=)

Beispiele:
  euler calc --a-re 3 --a-im 4 --op mul --b-re 1 --b-im 2
  euler calc --a-re 3 --a-im 4 --rel lt --scalar 6`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().Float64Var(&calcARe, "a-re", 0, "Realteil von a")
	calcCmd.Flags().Float64Var(&calcAIm, "a-im", 0, "Imaginaerteil von a")
	calcCmd.Flags().Float64Var(&calcBRe, "b-re", 0, "Realteil von b")
	calcCmd.Flags().Float64Var(&calcBIm, "b-im", 0, "Imaginaerteil von b")
	calcCmd.Flags().Float64Var(&calcScalar, "scalar", 0, "Reeller Operand statt b")
	calcCmd.Flags().StringVar(&calcOp, "op", "", "Rechenoperation")
	calcCmd.Flags().StringVar(&calcRelation, "rel", "", "Vergleich")

	calcCmd.MarkFlagsOneRequired("op", "rel")
	calcCmd.MarkFlagsMutuallyExclusive("op", "rel")
	calcCmd.MarkFlagsMutuallyExclusive("scalar", "b-re")
	calcCmd.MarkFlagsMutuallyExclusive("scalar", "b-im")
}

func runCalc(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	left := mdwmathx.NewComplex(calcARe, calcAIm)

	var right mdwmathx.Operand = mdwmathx.NewComplex(calcBRe, calcBIm)
	if cmd.Flags().Changed("scalar") {
		right = mdwmathx.Scalar(calcScalar)
	}

	format := a.cfg.NumberFormat()
	out := cmd.OutOrStdout()

	if calcRelation != "" {
		rel, err := mdwmathx.ParseRelation(calcRelation)
		if err != nil {
			return err
		}
		result := left.Compare(rel, right)
		a.logger.Debug("comparison evaluated", mdwlog.Fields{"relation": rel.String(), "result": result})

		flag := "0"
		if result {
			flag = "1"
		}
		_, err = fmt.Fprintln(out, flag)
		return err
	}

	op, err := mdwmathx.ParseOp(calcOp)
	if err != nil {
		return err
	}
	result := left.Apply(op, right)
	a.logger.Debug("operation evaluated", mdwlog.Fields{"op": op.String(), "result": result.String()})

	_, err = fmt.Fprintln(out, format.Algebraic(result))
	return err
}
