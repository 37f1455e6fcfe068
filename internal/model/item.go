package model

// LineItem is one billable entry on a document.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
}

// CalculationResult holds the derived totals of a document.
type CalculationResult struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}
