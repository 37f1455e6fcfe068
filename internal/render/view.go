package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/thaidoc/internal/calc"
	"github.com/cleared-dev/thaidoc/internal/model"
	"github.com/cleared-dev/thaidoc/internal/thaifmt"
)

var titles = map[model.DocumentType]string{
	model.DocInvoice:   "ใบแจ้งหนี้ / Invoice",
	model.DocQuotation: "ใบเสนอราคา / Quotation",
	model.DocReceipt:   "ใบเสร็จรับเงิน / Receipt",
}

// view holds every string printed on the page.
type view struct {
	Title     string
	Number    string
	Date      string
	DueDate   string
	Seller    model.Party
	Customer  model.Party
	Rows      []row
	Subtotal  string
	TaxLabel  string
	TaxAmount string
	Total     string
	TotalText string
	Notes     string
}

type row struct {
	Index       string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Amount      string
}

func buildView(doc *model.Document, totals model.CalculationResult) (view, error) {
	date, err := thaifmt.FormatDateThai(doc.Date)
	if err != nil {
		return view{}, fmt.Errorf("document date: %w", err)
	}

	var due string
	if doc.DueDate != "" {
		due, err = thaifmt.FormatDateThai(doc.DueDate)
		if err != nil {
			return view{}, fmt.Errorf("due date: %w", err)
		}
	}

	title, ok := titles[doc.Type]
	if !ok {
		title = titles[model.DocInvoice]
	}

	rows := make([]row, len(doc.Items))
	for i, item := range doc.Items {
		rows[i] = row{
			Index:       fmt.Sprint(i + 1),
			Description: item.Description,
			Quantity:    decimal.NewFromFloat(item.Quantity).String(),
			Unit:        item.Unit,
			UnitPrice:   thaifmt.FormatAmount(item.UnitPrice),
			Amount:      thaifmt.FormatAmount(calc.LineAmount(item)),
		}
	}

	return view{
		Title:     title,
		Number:    doc.Number,
		Date:      date,
		DueDate:   due,
		Seller:    doc.Seller,
		Customer:  doc.Customer,
		Rows:      rows,
		Subtotal:  thaifmt.FormatAmount(totals.Subtotal),
		TaxLabel:  taxLabel(doc.TaxType, doc.Rate()),
		TaxAmount: thaifmt.FormatAmount(totals.TaxAmount),
		Total:     thaifmt.FormatAmount(totals.Total),
		TotalText: thaifmt.BahtText(totals.Total),
		Notes:     doc.Notes,
	}, nil
}

func taxLabel(taxType model.TaxType, rate float64) string {
	percent := decimal.NewFromFloat(rate).Shift(2).String()
	if taxType == model.TaxWithholding {
		return "หักภาษี ณ ที่จ่าย " + percent + "%"
	}
	return "ภาษีมูลค่าเพิ่ม " + percent + "%"
}
