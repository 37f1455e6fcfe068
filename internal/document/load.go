// Package document loads, completes and checks the JSON documents the CLI renders.
package document

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/thaidoc/internal/config"
	"github.com/cleared-dev/thaidoc/internal/fileio"
	"github.com/cleared-dev/thaidoc/internal/model"
)

// ErrNotFound is returned by Load when the document file does not exist.
var ErrNotFound = errors.New("document not found")

// Load reads a document JSON file from fsys.
func Load(fsys fileio.FS, path string) (*model.Document, error) {
	if !fileio.FileExists(fsys, path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	doc, err := fileio.ReadJSON[model.Document](fsys, path)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	return &doc, nil
}

// ApplyDefaults fills seller and tax settings the document leaves out.
// A document without a type is treated as an invoice.
func ApplyDefaults(doc *model.Document, cfg *config.Config) {
	if doc.Type == "" {
		doc.Type = model.DocInvoice
	}
	if doc.Seller.Name == "" {
		doc.Seller = cfg.Seller
	}
	if doc.TaxRate == nil {
		rate := cfg.Tax.Rate
		doc.TaxRate = &rate
	}
	if doc.TaxType == "" {
		doc.TaxType = cfg.Tax.Type
	}
}
