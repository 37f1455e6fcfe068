package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTaxType is returned when a tax tag is neither withholding nor vat.
var ErrUnknownTaxType = errors.New("unknown tax type")

// TaxType selects whether tax is subtracted from or added to the subtotal.
type TaxType string

const (
	TaxWithholding TaxType = "withholding"
	TaxVAT         TaxType = "vat"
)

// Sign returns -1 for withholding and +1 for VAT.
func (t TaxType) Sign() float64 {
	if t == TaxWithholding {
		return -1
	}
	return 1
}

// Valid reports whether t is one of the known tax types.
func (t TaxType) Valid() bool {
	return t == TaxWithholding || t == TaxVAT
}

// ParseTaxType accepts "withholding" or "vat" in any case.
func ParseTaxType(s string) (TaxType, error) {
	t := TaxType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTaxType, s)
	}
	return t, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TaxType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tax type: %w", err)
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := ParseTaxType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TaxType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("tax type: %w", err)
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := ParseTaxType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SetValue lets cleanenv fill a TaxType from an environment variable.
func (t *TaxType) SetValue(s string) error {
	parsed, err := ParseTaxType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
