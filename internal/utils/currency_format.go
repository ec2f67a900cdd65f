package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way workshop statements show it:
// "Rp 150,000" — rounded to whole rupiah with comma thousand separators.
// Negative amounts keep their sign: "Rp -50,000".
func FormatRupiah(amount decimal.Decimal) string {
	rounded := amount.Round(0).String()

	negative := strings.HasPrefix(rounded, "-")
	digits := strings.TrimPrefix(rounded, "-")

	var b strings.Builder
	b.WriteString("Rp ")
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}
