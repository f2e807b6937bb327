package domain

import "math"

// RoundMoney rounds to 2 decimals, half away from zero. All commission
// amounts are USD.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// PercentOf computes rate% of base, rounded to cents.
func PercentOf(base, rate float64) float64 {
	return RoundMoney(base * rate / 100)
}
