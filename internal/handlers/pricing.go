package handlers

import "math"

// displayPrice applies the stored commission percentage as a customer-facing
// markup. Pure read-time transform; the vendor's base price is never mutated.
func displayPrice(basePrice, commissionPercent float64) float64 {
	if commissionPercent <= 0 {
		return basePrice
	}
	return math.Round(basePrice * (1 + commissionPercent/100))
}
