package thaifmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thaiDigits   = [10]string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	thaiPlaces   = [6]string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}
	hundredCents = decimal.NewFromInt(100)
)

const (
	wordBaht    = "บาท"
	wordSatang  = "สตางค์"
	wordExact   = "ถ้วน"
	wordMillion = "ล้าน"
	wordMinus   = "ลบ"
	wordEt      = "เอ็ด"
	wordTwenty  = "ยี่สิบ"
)

// MaxBahtText bounds the magnitudes BahtText spells out in words.
const MaxBahtText = 1e15

// BahtText spells an amount in Thai words, rounded to the satang:
// 121.50 -> "หนึ่งร้อยยี่สิบเอ็ดบาทห้าสิบสตางค์".
// NaN, infinities and magnitudes at or above MaxBahtText are returned as
// FormatAmount digits instead.
func BahtText(amount float64) string {
	if math.IsNaN(amount) || math.Abs(amount) >= MaxBahtText {
		return FormatAmount(amount)
	}
	satangTotal := decimal.NewFromFloat(amount).Round(2).Mul(hundredCents).IntPart()

	var b strings.Builder
	if satangTotal < 0 {
		b.WriteString(wordMinus)
		satangTotal = -satangTotal
	}

	baht, satang := satangTotal/100, satangTotal%100

	switch {
	case baht == 0 && satang == 0:
		b.WriteString(thaiDigits[0] + wordBaht + wordExact)
	case satang == 0:
		b.WriteString(readNumber(baht, false) + wordBaht + wordExact)
	case baht == 0:
		b.WriteString(readNumber(satang, false) + wordSatang)
	default:
		b.WriteString(readNumber(baht, false) + wordBaht + readNumber(satang, false) + wordSatang)
	}
	return b.String()
}

// readNumber reads a positive integer in Thai. trailing marks a group that
// follows a million, where a lone final one is read "เอ็ด".
func readNumber(n int64, trailing bool) string {
	if n == 0 {
		return ""
	}
	if n >= 1_000_000 {
		return readNumber(n/1_000_000, trailing) + wordMillion + readNumber(n%1_000_000, true)
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i := range len(digits) {
		d := int(digits[i] - '0')
		place := len(digits) - i - 1
		if d == 0 {
			continue
		}
		switch {
		case place == 0 && d == 1 && (len(digits) > 1 || trailing):
			b.WriteString(wordEt)
		case place == 1 && d == 1:
			b.WriteString(thaiPlaces[1])
		case place == 1 && d == 2:
			b.WriteString(wordTwenty)
		default:
			b.WriteString(thaiDigits[d] + thaiPlaces[place])
		}
	}
	return b.String()
}
