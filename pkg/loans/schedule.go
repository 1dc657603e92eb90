package loans

import (
	"fmt"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/rate"
	"go.uber.org/zap"
)

// SchedulePoint holds the values for a single amortization period.
type SchedulePoint struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// YearPoint aggregates principal and interest paid over a 12-period block.
type YearPoint struct {
	Year      int     `json:"year"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// AmortizationResult is the outcome of a fixed-term loan simulation.
type AmortizationResult struct {
	MonthlyPayment float64         `json:"monthlyPayment"`
	TotalPayment   float64         `json:"totalPayment"`
	TotalInterest  float64         `json:"totalInterest"`
	Schedule       []SchedulePoint `json:"schedule"`
	YearlySeries   []YearPoint     `json:"yearlySeries"`
}

// Simulator walks loan balances month by month.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a simulator instance.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Amortize generates the fixed-term amortization of a loan: fixed monthly
// payment, totals, the first SchedulePeriodsLimit periods of the schedule,
// and yearly principal/interest rollups (first YearlySeriesLimit years,
// with a partial final bucket flushed at the last period).
//
// Non-positive principal or a term below one month yields a zeroed result
// rather than an error; callers reject invalid input up front.
func (s *Simulator) Amortize(principal, annualRatePercent float64, termMonths int) AmortizationResult {
	var result AmortizationResult
	if principal <= 0 || termMonths < 1 || annualRatePercent < 0 {
		return result
	}

	monthlyRate := rate.Monthly(annualRatePercent)
	payment := Payment(principal, monthlyRate, termMonths)
	totalPayment := payment * float64(termMonths)

	result.MonthlyPayment = mathutil.Round(payment)
	result.TotalPayment = mathutil.Round(totalPayment)
	result.TotalInterest = mathutil.Round(totalPayment - principal)

	balance := principal
	yearlyPrincipal := 0.00
	yearlyInterest := 0.00
	year := 1

	for period := 1; period <= termMonths; period++ {
		interest := InterestPortion(balance, monthlyRate)
		principalPortion := payment - interest
		balance = mathutil.Max(0, balance-principalPortion)

		yearlyPrincipal += principalPortion
		yearlyInterest += interest

		if period <= constants.SchedulePeriodsLimit {
			result.Schedule = append(result.Schedule, SchedulePoint{
				Period:    period,
				Payment:   mathutil.Round(payment),
				Principal: mathutil.Round(principalPortion),
				Interest:  mathutil.Round(interest),
				Balance:   mathutil.Round(balance),
			})
		}

		// Flush the yearly bucket at every 12-period boundary and at the
		// final period so a partial last year is not dropped.
		if period%constants.MonthsPerYear == 0 || period == termMonths {
			if len(result.YearlySeries) < constants.YearlySeriesLimit {
				result.YearlySeries = append(result.YearlySeries, YearPoint{
					Year:      year,
					Principal: mathutil.Round(yearlyPrincipal),
					Interest:  mathutil.Round(yearlyInterest),
				})
			}
			yearlyPrincipal = 0.00
			yearlyInterest = 0.00
			year++
		}
	}

	s.logger.Debug(fmt.Sprintf("amortized %.2f over %d months at %.2f%%", principal, termMonths, annualRatePercent),
		zap.String("op", "loans.Amortize"),
		zap.Float64("monthlyPayment", result.MonthlyPayment),
	)

	return result
}
