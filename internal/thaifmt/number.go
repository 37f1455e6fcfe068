// Package thaifmt formats numbers, amounts and dates for Thai business documents.
package thaifmt

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDecimals is the number of fractional digits used for money.
	DefaultDecimals = 2

	maxDecimals = 100

	// Magnitudes from here on are printed in exponent form.
	exponentThreshold = 1e21
)

// FormatNumber renders num with the given number of fractional digits and
// inserts a comma every three digits of the integer part.
//
// Rounding follows the exact binary value of num, half away from zero, so
// 1.005 prints as "1.00" (its stored value is 1.00499...) and 0.125 as "0.13".
// decimals is clamped to [0, 100].
func FormatNumber(num float64, decimals int) string {
	decimals = min(max(decimals, 0), maxDecimals)

	switch {
	case math.IsNaN(num):
		return "NaN"
	case math.IsInf(num, 1):
		return "Infinity"
	case math.IsInf(num, -1):
		return "-Infinity"
	}

	sign := ""
	if num < 0 {
		sign = "-"
		num = -num
	}

	if num >= exponentThreshold {
		return sign + strconv.FormatFloat(num, 'g', -1, 64)
	}

	fixed := exactDecimal(num).StringFixed(int32(decimals))
	whole, frac, _ := strings.Cut(fixed, ".")

	out := sign + groupThousands(whole)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// FormatAmount formats a money amount with DefaultDecimals digits.
func FormatAmount(num float64) string {
	return FormatNumber(num, DefaultDecimals)
}

// exactDecimal returns the exact value of a finite, non-negative float.
// mantissa × 2^-k is rewritten as mantissa × 5^k × 10^-k.
func exactDecimal(f float64) decimal.Decimal {
	if f == 0 {
		return decimal.Zero
	}

	frac, exp := math.Frexp(f)
	coef := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(coef.Lsh(coef, uint(exp)), 0)
	}

	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(coef.Mul(coef, pow), int32(exp))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
