// Package format holds the pure display-formatting helpers: bank names,
// Rupiah amounts, and timestamps.
package format

import (
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidDate is returned when a timestamp cannot be parsed with any of
// the layouts the endpoint is known to use.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order. The endpoint sends "2006-01-02 15:04:05";
// RFC3339 and plain dates show up in fixtures and older payloads.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// BankName normalizes a short bank identifier for display. Codes of four
// characters or fewer ("bni", "bca") are upper-cased whole; longer names
// ("mandiri") get only their first rune upper-cased, the rest untouched.
func BankName(name string) string {
	if name == "" {
		return ""
	}
	if utf8.RuneCountInString(name) <= 4 {
		var out []rune
		for _, r := range name {
			out = append(out, unicode.ToUpper(r))
		}
		return string(out)
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + name[size:]
}

// Rupiah renders a whole-unit amount with Indonesian digit grouping and the
// Rp prefix, e.g. 439863 -> "Rp439.863".
func Rupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp%d", amount)
}

// ParseDate parses one of the endpoint's timestamp representations.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// Date renders a timestamp as "DD MonthName YYYY" with English month names,
// e.g. "20 November 2024". Unparseable input yields ErrInvalidDate.
func Date(value string) (string, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return parsed.Format("02 January 2006"), nil
}

// DateOrRaw is the render-path variant of Date: instead of propagating a
// parse failure into the view it falls back to the raw string.
func DateOrRaw(value string) string {
	formatted, err := Date(value)
	if err != nil {
		return value
	}
	return formatted
}

// StatusLabel returns the badge text for a raw status value. Unrecognized
// values are shown as-is rather than being forced into one of the two known
// states.
func StatusLabel(raw string) string {
	switch raw {
	case "SUCCESS":
		return "Berhasil"
	case "PENDING":
		return "Pengecekan"
	default:
		return raw
	}
}
