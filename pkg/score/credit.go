// Package score implements the weighted scoring heuristics behind the
// credit-score simulator and the loan approval estimate.
package score

import (
	"math"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/mathutil"
)

// Factor weights. These mirror the standard FICO factor breakdown.
const (
	paymentHistoryWeight = 0.35
	utilizationWeight    = 0.30
	creditAgeWeight      = 0.15
	creditMixWeight      = 0.10
	inquiryWeight        = 0.10

	// Credit age contributes 10 points per year up to this ceiling.
	creditAgeCeiling = 100.0
	creditAgePerYear = 10.0

	creditMixMax = 5.0

	// Each hard inquiry in the last two years costs 10 of 100 points.
	inquiryBaseline = 10.0
	inquiryPenalty  = 10.0
)

// Factors are the sub-factor inputs of the credit-score simulation.
type Factors struct {
	PaymentHistoryPct float64 `json:"paymentHistoryPct"`
	UtilizationPct    float64 `json:"utilizationPct"`
	CreditAgeYears    float64 `json:"creditAgeYears"`
	CreditMixCount    int     `json:"creditMixCount"`
	HardInquiries     int     `json:"hardInquiries"`
}

// EstimateCreditScore blends the weighted sub-factors into a [0,100]
// composite and rescales it onto the standard 300-850 range. Utilization
// and inquiries are inverted (lower is better); the output is always
// clamped to the valid score range.
func EstimateCreditScore(f Factors) int {
	paymentScore := mathutil.Clamp(f.PaymentHistoryPct, 0, 100) * paymentHistoryWeight
	utilizationScore := (100 - mathutil.Clamp(f.UtilizationPct, 0, 100)) * utilizationWeight
	ageScore := math.Min(mathutil.Max(f.CreditAgeYears, 0)*creditAgePerYear, creditAgeCeiling) * creditAgeWeight
	mixScore := float64(f.CreditMixCount) / creditMixMax * 100 * creditMixWeight
	inquiryScore := (inquiryBaseline - float64(f.HardInquiries)) * inquiryPenalty * inquiryWeight

	composite := paymentScore + utilizationScore + ageScore + mixScore + inquiryScore
	scaled := constants.ScoreFloor + composite/100*constants.ScoreSpan

	return int(mathutil.Clamp(math.Round(scaled), constants.ScoreFloor, constants.ScoreCeiling))
}

// ratingBand is one row of an ordered rating table, scanned top-down with
// first match winning. Boundary values land in the better band.
type ratingBand struct {
	threshold float64
	label     string
}

var creditRatings = []ratingBand{
	{800, "Exceptional"},
	{740, "Very Good"},
	{670, "Good"},
	{580, "Fair"},
}

// CreditRating maps a credit score onto its consumer-facing band.
func CreditRating(creditScore int) string {
	for _, band := range creditRatings {
		if float64(creditScore) >= band.threshold {
			return band.label
		}
	}
	return "Poor"
}
