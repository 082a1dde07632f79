package render

import (
	"strconv"
	"strings"
	"time"
)

// nbsp separates digit groups and symbols in French number formatting.
const nbsp = "\u00a0"

// Placeholders used instead of omitting data, so row/column structure
// stays stable for visual diffing.
const (
	PlaceholderMissing   = "Non spécifié"
	PlaceholderDate      = "—"
	PlaceholderNotSigned = "Non signé"
)

// FormatMoney renders a non-negative amount as French currency,
// e.g. 1000 -> "1 000,00 €".
func FormatMoney(v float64) string {
	return formatDecimal(v) + nbsp + "€"
}

// FormatPercent renders a tax rate with two decimals and a percent sign,
// e.g. 20 -> "20,00 %".
func FormatPercent(v float64) string {
	return formatDecimal(v) + nbsp + "%"
}

// FormatQuantity trims insignificant zeros, e.g. 1.50 -> "1,5".
func FormatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return strings.ReplaceAll(s, ".", ",")
}

// FormatDate renders a calendar date the French way, or an em-dash when
// the date is absent. Never "Invalid Date", never a zero year.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return PlaceholderDate
	}
	return t.UTC().Format("02/01/2006")
}

// FormatTimestamp renders the generated-at footer value.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("02/01/2006 15:04")
}

// OrPlaceholder substitutes the explicit missing-value label.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return PlaceholderMissing
	}
	return s
}

func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(nbsp)
		}
		b.WriteRune(r)
	}
	return b.String() + "," + fracPart
}
