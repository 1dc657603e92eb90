// Package rate converts annual percentage rates into periodic rates.
package rate

import "github.com/credwise/credwise/pkg/constants"

// Monthly converts an annual percentage rate into the equivalent monthly
// periodic rate as a decimal, e.g. 6.0 -> 0.005. Zero is accepted.
func Monthly(annualPercent float64) float64 {
	return annualPercent / constants.PercentageMultiplier / constants.MonthsPerYear
}

// AnnualFromMonthly is the inverse of Monthly, returning the annual
// percentage rate for a monthly periodic rate.
func AnnualFromMonthly(monthlyRate float64) float64 {
	return monthlyRate * constants.PercentageMultiplier * constants.MonthsPerYear
}
