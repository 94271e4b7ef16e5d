// Package format holds the Brazilian display formatters used by the
// storefront: BRL currency, dates, CEP, phone and card fields.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency formats a value as Brazilian Real, comma as the decimal separator.
func Currency(value float64) string {
	if value != value { // NaN
		return "R$ 0,00"
	}
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", value), ".", ",", 1)
}

// Date renders dd/mm/yyyy.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// DateTime renders dd/mm/yyyy hh:mm.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

// CEP formats a Brazilian postal code as 00000-000.
func CEP(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 5 {
		end := len(digits)
		if end > 8 {
			end = 8
		}
		return digits[:5] + "-" + digits[5:end]
	}
	return digits
}

// Phone formats (00) 00000-0000.
func Phone(value string) string {
	digits := onlyDigits(value)
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	case len(digits) <= 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:11])
	}
}

// CardNumber groups the digits in blocks of four.
func CardNumber(value string) string {
	digits := onlyDigits(value)
	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// CardExpiry formats MM/AA.
func CardExpiry(value string) string {
	digits := onlyDigits(value)
	if len(digits) > 2 {
		end := len(digits)
		if end > 4 {
			end = 4
		}
		return digits[:2] + "/" + digits[2:end]
	}
	return digits
}

// Truncate cuts the text at maxLength and appends an ellipsis.
func Truncate(text string, maxLength int) string {
	if text == "" || len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
