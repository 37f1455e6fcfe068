// Package items reads and writes line items as CSV.
package items

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/thaidoc/internal/model"
)

// Header is the CSV header for line-item files.
const Header = "description,quantity,unit,unit_price"

const (
	numFields    = 4
	colDesc      = 0
	colQuantity  = 1
	colUnit      = 2
	colUnitPrice = 3
)

// ReadItems reads a line-item CSV. The first row is the header.
func ReadItems(r io.Reader) ([]model.LineItem, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading items CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lineItems []model.LineItem
	for i, rec := range records[1:] {
		item, err := UnmarshalItem(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lineItems = append(lineItems, item)
	}
	return lineItems, nil
}

// WriteItems writes a line-item CSV including the header.
func WriteItems(w io.Writer, lineItems []model.LineItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, item := range lineItems {
		if err := cw.Write(MarshalItem(item)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalItem converts a LineItem to a CSV row.
func MarshalItem(item model.LineItem) []string {
	row := make([]string, numFields)
	row[colDesc] = item.Description
	row[colQuantity] = decimal.NewFromFloat(item.Quantity).String()
	row[colUnit] = item.Unit
	row[colUnitPrice] = decimal.NewFromFloat(item.UnitPrice).String()
	return row
}

// UnmarshalItem converts a CSV row to a LineItem.
func UnmarshalItem(record []string) (model.LineItem, error) {
	if len(record) != numFields {
		return model.LineItem{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(record[colQuantity]))
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing quantity %q: %w", record[colQuantity], err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[colUnitPrice]))
	if err != nil {
		return model.LineItem{}, fmt.Errorf("parsing unit_price %q: %w", record[colUnitPrice], err)
	}

	return model.LineItem{
		Description: record[colDesc],
		Quantity:    qty.InexactFloat64(),
		Unit:        record[colUnit],
		UnitPrice:   price.InexactFloat64(),
	}, nil
}
