// Package calc computes document totals from line items.
package calc

import "github.com/cleared-dev/thaidoc/internal/model"

// CalculateTotals sums quantity × unit price over items and applies taxRate.
// Withholding tax is deducted from the subtotal, VAT is added to it.
// Values are not rounded.
func CalculateTotals(items []model.LineItem, taxRate float64, taxType model.TaxType) model.CalculationResult {
	var subtotal float64
	for _, item := range items {
		subtotal += LineAmount(item)
	}

	taxAmount := subtotal * taxRate

	return model.CalculationResult{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxType.Sign()*taxAmount,
	}
}

// LineAmount returns quantity × unit price for a single item.
func LineAmount(item model.LineItem) float64 {
	return item.Quantity * item.UnitPrice
}
