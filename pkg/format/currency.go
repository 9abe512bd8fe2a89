// Package format renders amounts, ranges and hour counts for display.
package format

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/iwvelando/salary-calculator/pkg/constants"
	"github.com/iwvelando/salary-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// readingUnits are the names of successive powers of 10,000.
var readingUnits = []string{"", "万", "億", "兆"}

// Yen returns a whole-yen currency string with thousands separators
// (e.g., "¥1,894"). Fractions are rounded half away from zero.
func Yen(amount float64) string {
	return money.New(mathutil.RoundToInt(amount), constants.CurrencyCode).Display()
}

// YenRange returns "min 〜 max" with both bounds formatted by Yen.
func YenRange(min, max float64) string {
	return Yen(min) + constants.RangeSeparator + Yen(max)
}

// Grouped returns n with thousands separators as shown in an input field.
// Zero is rendered as an empty string so an untouched field stays blank.
func Grouped(n int64) string {
	if n == 0 {
		return ""
	}
	return message.NewPrinter(language.Japanese).Sprintf("%d", n)
}

// Plain returns n without separators, or "" for zero.
func Plain(n int64) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}

// JapaneseReading spells n in groups of four digits with the units
// 万, 億 and 兆 (e.g., 123456789 reads "1億2345万6789"). Empty groups are
// skipped, only the four lowest groups are read, and zero yields "".
func JapaneseReading(n int64) string {
	if n < 0 {
		n = -n
	}

	var parts []string
	for i := 0; n > 0 && i < len(readingUnits); i++ {
		if part := n % 10000; part > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", part, readingUnits[i]))
		}
		n /= 10000
	}

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String()
}

// Hours returns an hour count with one decimal (e.g., "190.0").
func Hours(h float64) string {
	return fmt.Sprintf("%.1f", h)
}
