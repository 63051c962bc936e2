// Package report renders tabular console output and writes CSV exports. It
// computes nothing itself; totals come from the persistence layer.
package report

import (
	"strconv"
	"strings"
)

// FormatMoney renders a currency value with "." as the thousands separator
// and "," as the decimal separator, e.g. 1234.5 -> "1.234,50". The locale
// style is a fixed design choice.
func FormatMoney(value float64) string {
	s := strconv.FormatFloat(value, 'f', 2, 64)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
