package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/thaidoc/internal/model"
)

func sampleItems() []model.LineItem {
	return []model.LineItem{
		{Description: "Website design", Quantity: 1, Unit: "job", UnitPrice: 25000},
		{Description: "Hosting", Quantity: 12, Unit: "month", UnitPrice: 350.5},
		{Description: "Domain", Quantity: 2, Unit: "year", UnitPrice: 420},
	}
}

func TestCalculateTotals_Subtotal(t *testing.T) {
	items := sampleItems()

	var want float64
	for _, it := range items {
		want += it.Quantity * it.UnitPrice
	}

	for _, tt := range []model.TaxType{model.TaxWithholding, model.TaxVAT} {
		got := CalculateTotals(items, 0.03, tt)
		assert.Equal(t, want, got.Subtotal, "tax type %s", tt)
		assert.Equal(t, 25000+12*350.5+2*420.0, got.Subtotal)
	}
}

func TestCalculateTotals_Withholding(t *testing.T) {
	got := CalculateTotals(sampleItems(), 0.03, model.TaxWithholding)
	assert.Equal(t, got.Subtotal*0.03, got.TaxAmount)
	assert.Equal(t, got.Subtotal-got.TaxAmount, got.Total)
}

func TestCalculateTotals_VAT(t *testing.T) {
	got := CalculateTotals(sampleItems(), 0.07, model.TaxVAT)
	assert.Equal(t, got.Subtotal*0.07, got.TaxAmount)
	assert.Equal(t, got.Subtotal+got.TaxAmount, got.Total)
}

func TestCalculateTotals_RatesAndTypes(t *testing.T) {
	items := []model.LineItem{
		{Quantity: 3, UnitPrice: 0.1},
		{Quantity: 7, UnitPrice: 19.99},
	}
	for _, rate := range []float64{0, 0.01, 0.03, 0.07, 0.5, 1} {
		w := CalculateTotals(items, rate, model.TaxWithholding)
		assert.Equal(t, w.Subtotal-w.TaxAmount, w.Total, "withholding rate %v", rate)

		v := CalculateTotals(items, rate, model.TaxVAT)
		assert.Equal(t, v.Subtotal+v.TaxAmount, v.Total, "vat rate %v", rate)
	}
}

func TestCalculateTotals_Empty(t *testing.T) {
	for _, tt := range []model.TaxType{model.TaxWithholding, model.TaxVAT} {
		got := CalculateTotals(nil, 0.07, tt)
		assert.Zero(t, got.Subtotal)
		assert.Zero(t, got.TaxAmount)
		assert.True(t, got.Total == 0, "total should equal 0 for %s, got %v", tt, got.Total)
	}
}

func TestCalculateTotals_NoRounding(t *testing.T) {
	got := CalculateTotals([]model.LineItem{{Quantity: 1, UnitPrice: 0.1}, {Quantity: 1, UnitPrice: 0.2}}, 0, model.TaxVAT)
	// 0.1 + 0.2 is not exactly 0.3 in binary floating point.
	assert.Equal(t, 0.1+0.2, got.Subtotal)
	assert.NotEqual(t, 0.3, got.Subtotal)
}

func TestCalculateTotals_NaNPropagates(t *testing.T) {
	got := CalculateTotals([]model.LineItem{{Quantity: math.NaN(), UnitPrice: 10}}, 0.07, model.TaxVAT)
	assert.True(t, math.IsNaN(got.Subtotal))
	assert.True(t, math.IsNaN(got.Total))
}

func TestLineAmount(t *testing.T) {
	assert.Equal(t, 4206.0, LineAmount(model.LineItem{Quantity: 12, UnitPrice: 350.5}))
}
