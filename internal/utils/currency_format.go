package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is the display symbol for amounts rendered to users.
const CurrencySymbol = "₹"

// FormatINR renders an amount the way the dashboard displays it: rupee symbol,
// en-IN digit grouping (last three digits, then pairs) and no fraction digits.
// Example: 1234567.8 returns "₹12,34,568"
// Example: -8200 returns "-₹8,200"
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + CurrencySymbol + groupIndian(rounded.String())
}

// groupIndian inserts en-IN separators into a string of digits.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var pairs []string
	for len(head) > 2 {
		pairs = append([]string{head[len(head)-2:]}, pairs...)
		head = head[:len(head)-2]
	}
	pairs = append([]string{head}, pairs...)
	return strings.Join(pairs, ",") + "," + tail
}
