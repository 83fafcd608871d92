// Package money formats monetary amounts the way the dashboard displays
// them: Indonesian Rupiah, grouped integer, no fraction digits.
package money

import (
	"math"
	"strconv"
	"strings"
)

// nbsp separates the currency symbol from the digits, matching the id-ID
// locale output ("Rp 1.500.000").
const nbsp = " "

// FormatCurrency renders amount as Rupiah with dot thousands grouping and
// zero fraction digits. Fractional input rounds half away from zero.
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))

	formatted := "Rp" + nbsp + group(rounded)
	if amount < 0 && rounded != 0 {
		return "-" + formatted
	}
	return formatted
}

// group inserts "." every three digits from the right.
func group(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
