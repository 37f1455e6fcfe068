// Package docnum formats and parses document numbers like "INV-2567-001".
package docnum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cleared-dev/thaidoc/internal/model"
)

// Prefix returns the number prefix for a document type.
func Prefix(docType model.DocumentType) string {
	switch docType {
	case model.DocQuotation:
		return "QT"
	case model.DocReceipt:
		return "RC"
	default:
		return "INV"
	}
}

// Format returns a number like "INV-2567-001". yearBE is a Buddhist-era year.
func Format(prefix string, yearBE, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, yearBE, seq)
}

// Parse splits "INV-2567-001" into prefix, year and sequence.
func Parse(number string) (prefix string, yearBE, seq int, err error) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, 0, fmt.Errorf("invalid document number format: %q", number)
	}

	yearBE, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid year in document number %q: %w", number, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid sequence in document number %q: %w", number, err)
	}

	return parts[0], yearBE, seq, nil
}
