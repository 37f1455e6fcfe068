package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDocumentType is returned for a document tag outside invoice, quotation and receipt.
var ErrUnknownDocumentType = errors.New("unknown document type")

// DocumentType tags the kind of document being produced.
type DocumentType string

const (
	DocInvoice   DocumentType = "invoice"
	DocQuotation DocumentType = "quotation"
	DocReceipt   DocumentType = "receipt"
)

// ParseDocumentType accepts a document tag in any case.
func ParseDocumentType(s string) (DocumentType, error) {
	d := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DocInvoice, DocQuotation, DocReceipt:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, s)
}

// Party is a seller or customer block.
type Party struct {
	Name    string `json:"name" yaml:"name" env:"NAME"`
	Address string `json:"address,omitempty" yaml:"address" env:"ADDRESS"`
	TaxID   string `json:"taxId,omitempty" yaml:"tax_id" env:"TAX_ID"`
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty" env:"PHONE"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty" env:"EMAIL"`
}

// Document is the JSON input of the generate command.
type Document struct {
	Type     DocumentType `json:"type"`
	Number   string       `json:"documentNumber"`
	Date     string       `json:"date"` // any layout thaifmt.ParseDate accepts
	DueDate  string       `json:"dueDate,omitempty"`
	Seller   Party        `json:"seller"`
	Customer Party        `json:"customer"`
	Items    []LineItem   `json:"items"`
	TaxRate  *float64     `json:"taxRate,omitempty"` // nil = take from config
	TaxType  TaxType      `json:"taxType,omitempty"`
	Notes    string       `json:"notes,omitempty"`
	Output   string       `json:"output,omitempty"`
}

// Rate returns the tax rate, or 0 when unset.
func (d *Document) Rate() float64 {
	if d.TaxRate == nil {
		return 0
	}
	return *d.TaxRate
}
