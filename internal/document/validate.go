package document

import (
	"errors"
	"fmt"
	"math"

	"github.com/cleared-dev/thaidoc/internal/calc"
	"github.com/cleared-dev/thaidoc/internal/model"
	"github.com/cleared-dev/thaidoc/internal/thaifmt"
)

// ValidationError describes a single problem with a document.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a document after defaults have been applied and returns
// every problem found.
func Validate(doc *model.Document) []ValidationError {
	var errs []ValidationError

	if _, err := model.ParseDocumentType(string(doc.Type)); err != nil {
		errs = append(errs, ValidationError{Field: "type", Message: err.Error()})
	}
	if doc.Number == "" {
		errs = append(errs, ValidationError{Field: "documentNumber", Message: "is required"})
	}
	if _, err := thaifmt.ParseDate(doc.Date); err != nil {
		errs = append(errs, ValidationError{Field: "date", Message: err.Error()})
	}
	if doc.DueDate != "" {
		if _, err := thaifmt.ParseDate(doc.DueDate); err != nil {
			errs = append(errs, ValidationError{Field: "dueDate", Message: err.Error()})
		}
	}
	if doc.Customer.Name == "" {
		errs = append(errs, ValidationError{Field: "customer.name", Message: "is required"})
	}
	if !doc.TaxType.Valid() {
		errs = append(errs, ValidationError{Field: "taxType", Message: fmt.Sprintf("%q is not withholding or vat", doc.TaxType)})
	}
	if rate := doc.Rate(); math.IsNaN(rate) || rate < 0 || rate > 1 {
		errs = append(errs, ValidationError{Field: "taxRate", Message: fmt.Sprintf("%v is outside [0, 1]", rate)})
	}

	if len(doc.Items) == 0 {
		errs = append(errs, ValidationError{Field: "items", Message: "at least one line item is required"})
	}
	itemsOK := true
	for i, item := range doc.Items {
		field := fmt.Sprintf("items[%d]", i)
		n := len(errs)
		if item.Description == "" {
			errs = append(errs, ValidationError{Field: field + ".description", Message: "is required"})
		}
		if !nonNegative(item.Quantity) {
			errs = append(errs, ValidationError{Field: field + ".quantity", Message: fmt.Sprintf("%v must be a finite non-negative number", item.Quantity)})
		}
		if !nonNegative(item.UnitPrice) {
			errs = append(errs, ValidationError{Field: field + ".unitPrice", Message: fmt.Sprintf("%v must be a finite non-negative number", item.UnitPrice)})
		}
		if len(errs) == n && math.IsInf(calc.LineAmount(item), 0) {
			errs = append(errs, ValidationError{Field: field, Message: "amount overflows"})
		}
		if len(errs) > n {
			itemsOK = false
		}
	}

	if itemsOK && len(doc.Items) > 0 && doc.TaxType.Valid() {
		totals := calc.CalculateTotals(doc.Items, doc.Rate(), doc.TaxType)
		for _, v := range []float64{totals.Subtotal, totals.TaxAmount, totals.Total} {
			if math.IsNaN(v) || math.Abs(v) >= thaifmt.MaxBahtText {
				errs = append(errs, ValidationError{Field: "total", Message: fmt.Sprintf("%v is out of range", v)})
				break
			}
		}
	}

	return errs
}

// Check runs Validate and joins the problems into a single error, or returns nil.
func Check(doc *model.Document) error {
	verrs := Validate(doc)
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return fmt.Errorf("invalid document: %w", errors.Join(errs...))
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
