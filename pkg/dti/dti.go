// Package dti calculates and rates debt-to-income ratios.
package dti

import "github.com/credwise/credwise/pkg/mathutil"

// Ratio returns the debt-to-income ratio as a percentage. Zero or
// negative income yields zero rather than dividing by zero.
func Ratio(monthlyIncome, monthlyDebt float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	return mathutil.CalculatePercentage(monthlyDebt, monthlyIncome)
}

// Assessment is a lender-oriented reading of a DTI ratio.
type Assessment struct {
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// Bands are scanned top-down; the first band whose upper bound exceeds
// the ratio wins.
var assessments = []struct {
	below float64
	Assessment
}{
	{20, Assessment{"Excellent", "Lenders view this as very low risk."}},
	{36, Assessment{"Good", "Most lenders consider this acceptable."}},
	{43, Assessment{"Fair", "This is the maximum for most mortgage approvals."}},
	{50, Assessment{"Poor", "May be difficult to qualify for new credit."}},
}

// Rate maps a DTI ratio onto its assessment band.
func Rate(ratio float64) Assessment {
	for _, band := range assessments {
		if ratio < band.below {
			return band.Assessment
		}
	}
	return Assessment{"Very Poor", "Significant financial stress, difficult to qualify for loans."}
}
