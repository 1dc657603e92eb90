// Package savings projects compound savings growth with periodic contributions.
package savings

import (
	"fmt"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/rate"
	"go.uber.org/zap"
)

// YearPoint is one aggregated point of the growth series. Year 0 is the
// starting snapshot with zero interest.
type YearPoint struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Interest      float64 `json:"interest"`
}

// Result is the outcome of a savings projection.
type Result struct {
	FinalBalance       float64     `json:"finalBalance"`
	TotalContributions float64     `json:"totalContributions"`
	TotalInterest      float64     `json:"totalInterest"`
	YearlySeries       []YearPoint `json:"yearlySeries"`
}

// Projector runs month-by-month compounding walks.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a projector instance.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// Project compounds an initial deposit with a fixed monthly contribution
// over the given number of years. Each month the contribution is added
// first, then one month of interest accrues on the whole balance, so a
// contribution earns interest in the month it is made. Contributions and
// interest are tracked separately; the series has one point per year plus
// the year-0 start. Years outside [1, MaxProjectionYears] yield a zeroed
// result.
func (p *Projector) Project(initialDeposit, monthlyContribution, annualRatePercent float64, years int) Result {
	var result Result
	if years < 1 || years > constants.MaxProjectionYears ||
		initialDeposit < 0 || monthlyContribution < 0 || annualRatePercent < 0 {
		return result
	}

	monthlyRate := rate.Monthly(annualRatePercent)

	balance := initialDeposit
	totalContributions := initialDeposit
	totalInterest := 0.00

	result.YearlySeries = append(result.YearlySeries, YearPoint{
		Year:          0,
		Balance:       mathutil.Round(balance),
		Contributions: mathutil.Round(totalContributions),
		Interest:      0,
	})

	for year := 1; year <= years; year++ {
		for month := 1; month <= constants.MonthsPerYear; month++ {
			balance += monthlyContribution
			totalContributions += monthlyContribution

			interest := balance * monthlyRate
			balance += interest
			totalInterest += interest
		}

		result.YearlySeries = append(result.YearlySeries, YearPoint{
			Year:          year,
			Balance:       mathutil.Round(balance),
			Contributions: mathutil.Round(totalContributions),
			Interest:      mathutil.Round(totalInterest),
		})
	}

	result.FinalBalance = mathutil.Round(balance)
	result.TotalContributions = mathutil.Round(totalContributions)
	result.TotalInterest = mathutil.Round(totalInterest)

	p.logger.Debug(fmt.Sprintf("projected %.2f + %.2f/month over %d years at %.2f%%",
		initialDeposit, monthlyContribution, years, annualRatePercent),
		zap.String("op", "savings.Project"),
		zap.Float64("finalBalance", result.FinalBalance),
	)

	return result
}
