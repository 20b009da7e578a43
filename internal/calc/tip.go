package calc

import "math"

// DefaultTipPercent is the percentage applied when the caller does not
// specify one. Callers that collect the percentage from user input should
// pass the entered value instead.
const DefaultTipPercent = 15.0

// Tip computes the gratuity for a bill.
// The formula is tip = tipPercent / 100 * amount. When roundUp is set the
// result is raised to the next whole currency unit (ceiling); otherwise
// fractional cents are preserved and any display rounding is left to the
// currency formatter.
//
// Tip is total over its numeric domain: amount 0 yields 0, and a negative
// tipPercent is accepted and yields a negative tip rather than an error.
func Tip(amount, tipPercent float64, roundUp bool) float64 {
	tip := tipPercent / 100 * amount
	if roundUp {
		tip = math.Ceil(tip)
	}
	return tip
}

// Total returns the amount owed once the tip is added to the bill.
func Total(amount, tip float64) float64 {
	return amount + tip
}
