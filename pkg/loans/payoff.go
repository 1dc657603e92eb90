package loans

import (
	"errors"
	"fmt"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/rate"
	"go.uber.org/zap"
)

// ErrPaymentTooLow reports that a monthly payment does not exceed the
// monthly interest on the starting balance, so the principal can never
// shrink. Interest owed only decreases as the balance decreases, so a
// payment that clears this check at the starting balance stays adequate
// for the whole simulation.
var ErrPaymentTooLow = errors.New("monthly payment does not cover monthly interest")

// PayoffPoint holds the state after one month of payoff simulation.
type PayoffPoint struct {
	Month     int     `json:"month"`
	Balance   float64 `json:"balance"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
}

// PayoffResult is the outcome of a pay-until-zero simulation.
type PayoffResult struct {
	Months        int           `json:"months"`
	TotalInterest float64       `json:"totalInterest"`
	TotalPaid     float64       `json:"totalPaid"`
	Capped        bool          `json:"capped"`
	Series        []PayoffPoint `json:"series"`
}

// MinimumViablePayment returns the smallest monthly payment that reduces
// principal on the given balance. Anything at or below this amount is
// rejected by Payoff.
func MinimumViablePayment(balance, annualRatePercent float64) float64 {
	return InterestPortion(balance, rate.Monthly(annualRatePercent))
}

// Payoff simulates paying a revolving balance down to zero with a fixed
// monthly payment. It returns ErrPaymentTooLow when the payment cannot
// reduce principal at the starting balance. The walk is bounded at
// PayoffMonthsCap months; if the balance is still positive there the
// result is returned as-is with Capped set.
//
// Non-positive balance or payment yields a zeroed result with no error,
// matching the calculators' silent-skip behavior on empty input.
func (s *Simulator) Payoff(balance, annualRatePercent, monthlyPayment float64) (PayoffResult, error) {
	var result PayoffResult
	if balance <= 0 || monthlyPayment <= 0 {
		return result, nil
	}

	monthlyRate := rate.Monthly(annualRatePercent)
	if monthlyPayment <= InterestPortion(balance, monthlyRate) {
		s.logger.Debug(fmt.Sprintf("payment %.2f below monthly interest on %.2f at %.2f%%",
			monthlyPayment, balance, annualRatePercent),
			zap.String("op", "loans.Payoff"),
		)
		return result, ErrPaymentTooLow
	}

	remaining := balance
	totalInterest := 0.00
	month := 0

	for remaining > 0 && month < constants.PayoffMonthsCap {
		month++

		interest := InterestPortion(remaining, monthlyRate)
		principal := mathutil.Min(monthlyPayment-interest, remaining)
		remaining = mathutil.Max(0, remaining-principal)
		totalInterest += interest

		if len(result.Series) < constants.PayoffSeriesLimit {
			result.Series = append(result.Series, PayoffPoint{
				Month:     month,
				Balance:   mathutil.Round(remaining),
				Interest:  mathutil.Round(interest),
				Principal: mathutil.Round(principal),
			})
		}

		// The starting-balance check makes this unreachable for valid
		// input; it remains as a stop on the stepping rule itself.
		if monthlyPayment <= interest {
			return result, ErrPaymentTooLow
		}
	}

	result.Months = month
	result.Capped = remaining > 0
	result.TotalInterest = mathutil.Round(totalInterest)
	result.TotalPaid = mathutil.Round(balance - remaining + totalInterest)

	if result.Capped {
		s.logger.Warn("payoff simulation hit iteration cap before reaching zero balance",
			zap.String("op", "loans.Payoff"),
			zap.Float64("remaining", mathutil.Round(remaining)),
		)
	}

	return result, nil
}
