package utils

import (
	"strconv"
	"strings"
)

// ParsePrice coerces a catalog price into a float.
// The hosted database returns numeric columns as decimal strings ("20",
// "5.50"); older cart snapshots may additionally carry a currency symbol or
// thousands separators. An unparseable price counts as 0 so that cart totals
// stay defined.
func ParsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatPrice formats an amount as a price string like "$1,234.50".
// Uses comma as thousands separator and always two decimals.
func FormatPrice(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart := s[:dot]
	fracPart := s[dot:]

	if len(intPart) <= 3 {
		if neg {
			return "-$" + intPart + fracPart
		}
		return "$" + intPart + fracPart
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + $ + decimals
	b.Grow(len(s) + len(intPart)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)

	return b.String()
}
