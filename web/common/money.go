package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount in minor units as rupiah, e.g.
// 320000 -> "Rp 3.200,00". Negative amounts keep their sign in front of
// the symbol.
func FormatCurrency(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	intPart := minor / 100
	decimalPart := minor % 100
	return fmt.Sprintf("%sRp %s,%02d", sign, addDotsToInteger(intPart), decimalPart)
}

func addDotsToInteger(value int64) string {
	strValue := strconv.FormatInt(value, 10)
	var parts []string
	for i := len(strValue); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{strValue[start:i]}, parts...)
	}
	return strings.Join(parts, ".")
}
