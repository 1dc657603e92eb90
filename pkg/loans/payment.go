// Package loans provides loan payment and amortization calculations.
package loans

import (
	"math"
)

// Payment calculates the fixed monthly payment for a loan using the
// standard annuity formula. monthlyRate is a decimal periodic rate
// (see pkg/rate). A zero rate degrades to straight division so callers
// never see NaN.
func Payment(principal, monthlyRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths < 1 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(termMonths)
	}

	power := math.Pow(1.00+monthlyRate, float64(termMonths))
	return principal * monthlyRate * power / (power - 1.00)
}

// MaxPrincipal inverts the annuity formula: it returns the largest
// principal that a fixed monthly payment can service over termMonths.
// The zero-rate degradation mirrors Payment.
func MaxPrincipal(maxMonthlyPayment, monthlyRate float64, termMonths int) float64 {
	if maxMonthlyPayment <= 0 || termMonths < 1 {
		return 0
	}
	if monthlyRate == 0 {
		return maxMonthlyPayment * float64(termMonths)
	}

	return maxMonthlyPayment * (1.00 - math.Pow(1.00+monthlyRate, -float64(termMonths))) / monthlyRate
}

// InterestPortion calculates one month of interest on a balance.
func InterestPortion(balance, monthlyRate float64) float64 {
	return balance * monthlyRate
}
