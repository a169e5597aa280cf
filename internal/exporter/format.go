package exporter

import (
	"fmt"
	"strconv"
)

// formatUSD renders dollar amounts with two decimal places.
func formatUSD(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatPrice renders token prices with six decimal places; break-even
// prices on cheap tokens need the extra precision.
func formatPrice(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// formatAmount renders token and point amounts without a fixed width.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatPct renders a 0..1 fraction as a whole percentage.
func formatPct(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// formatOptional renders a nullable metric, mapping nil to the empty string.
// Nil means "not applicable", which must never be rendered as zero.
func formatOptional(v *float64, format func(float64) string) string {
	if v == nil {
		return ""
	}
	return format(*v)
}

// formatOptionalString maps a nullable timestamp to the empty string.
func formatOptionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
