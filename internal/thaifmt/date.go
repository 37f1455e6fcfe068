package thaifmt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date")

// buddhistEraOffset is the difference between Buddhist-era and Gregorian years.
const buddhistEraOffset = 543

var thaiMonths = [12]string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses s with the first matching layout. Date-only input is a
// calendar date and is never shifted by a timezone; a timestamp keeps the
// offset written in it.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDateThai converts a Gregorian date string to "<day> <Thai month> <BE year>",
// e.g. "2024-01-15" -> "15 มกราคม 2567".
func FormatDateThai(dateString string) (string, error) {
	t, err := ParseDate(dateString)
	if err != nil {
		return "", err
	}
	return FormatThaiDate(t), nil
}

// FormatThaiDate formats t using its own location.
func FormatThaiDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ThaiMonthName(t.Month()), BuddhistYear(t.Year()))
}

// ThaiMonthName returns the Thai name of m, or "" for an out-of-range month.
func ThaiMonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return thaiMonths[m-1]
}

// BuddhistYear converts a Gregorian year to the Buddhist era.
func BuddhistYear(gregorian int) int {
	return gregorian + buddhistEraOffset
}
