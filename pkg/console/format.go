package console

import (
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats v as dollars with thousands separators: $1,234.50.
func FormatMoney(v float64, decimals int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + groupThousands(strconv.FormatFloat(v, 'f', decimals, 64))
}

// FormatCount formats v as a whole number with thousands separators.
func FormatCount(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	if strings.HasPrefix(s, "-") {
		return "-" + groupThousands(s[1:])
	}
	return groupThousands(s)
}

// FormatPercent formats a ratio in [0,1] as a percentage with two decimals.
func FormatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 2, 64) + "%"
}

func groupThousands(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}

	var b strings.Builder
	head := len(intPart) % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}
