package models

import "math"

// Round2 rounds a monetary amount to 2 decimal places.
// Balances and transaction amounts are stored with this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds an exchange rate to 4 decimal places.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
