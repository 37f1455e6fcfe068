package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/thaidoc/internal/calc"
	"github.com/cleared-dev/thaidoc/internal/document"
	"github.com/cleared-dev/thaidoc/internal/fileio"
	"github.com/cleared-dev/thaidoc/internal/model"
	"github.com/cleared-dev/thaidoc/internal/thaifmt"
)

func newTotalsCommand(a *app) *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "totals <document.json>",
		Short: "Print the subtotal, tax and total of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.Load(fileio.OS, args[0])
			if err != nil {
				return err
			}
			document.ApplyDefaults(doc, a.cfg)
			if !doc.TaxType.Valid() {
				return fmt.Errorf("%w: %q", model.ErrUnknownTaxType, doc.TaxType)
			}

			totals := calc.CalculateTotals(doc.Items, doc.Rate(), doc.TaxType)
			printTotals(cmd, doc, totals, decimals)
			return nil
		},
	}

	cmd.Flags().IntVar(&decimals, "decimals", thaifmt.DefaultDecimals, "fractional digits")

	return cmd
}

func printTotals(cmd *cobra.Command, doc *model.Document, totals model.CalculationResult, decimals int) {
	taxName := "VAT"
	if doc.TaxType == model.TaxWithholding {
		taxName = "Withholding"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-16s %16s\n", "Subtotal", thaifmt.FormatNumber(totals.Subtotal, decimals))
	fmt.Fprintf(out, "%-16s %16s\n", taxName, thaifmt.FormatNumber(totals.TaxAmount, decimals))
	fmt.Fprintf(out, "%-16s %16s\n", "Total", thaifmt.FormatNumber(totals.Total, decimals))
}
