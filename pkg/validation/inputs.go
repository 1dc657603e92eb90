// Package validation provides input validation for the calculators.
package validation

import (
	"fmt"
	"math"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/credwise/credwise/pkg/eligibility"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/score"
)

// Term units accepted for loan input.
const (
	TermUnitMonths = "months"
	TermUnitYears  = "years"
)

// TermInMonths converts a term expressed in months or years into months.
func TermInMonths(term int, unit string) (int, error) {
	switch unit {
	case TermUnitMonths, "":
		return term, nil
	case TermUnitYears:
		return term * constants.MonthsPerYear, nil
	default:
		return 0, fmt.Errorf("expected term unit of %s or %s, got %s", TermUnitMonths, TermUnitYears, unit)
	}
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLoanInput rejects amortization inputs the simulator cannot
// produce a useful result for.
func ValidateLoanInput(principal, annualRatePercent float64, termMonths int) error {
	if err := requireFinite("principal", principal); err != nil {
		return err
	}
	if err := requireFinite("interest rate", annualRatePercent); err != nil {
		return err
	}
	if principal <= 0 {
		return fmt.Errorf("principal must be positive, got %.2f", principal)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("interest rate must not be negative, got %.2f", annualRatePercent)
	}
	if termMonths < 1 || termMonths > constants.MaxTermMonths {
		return fmt.Errorf("term must be between 1 and %d months, got %d", constants.MaxTermMonths, termMonths)
	}
	return nil
}

// ValidatePayoffInput rejects payoff inputs the simulator short-circuits on.
// The payment-too-low condition is not checked here; the simulator reports
// it as a tagged result so callers can surface the remediation message.
func ValidatePayoffInput(balance, annualRatePercent, monthlyPayment float64) error {
	for name, value := range map[string]float64{
		"balance": balance, "interest rate": annualRatePercent, "monthly payment": monthlyPayment,
	} {
		if err := requireFinite(name, value); err != nil {
			return err
		}
	}
	if balance <= 0 {
		return fmt.Errorf("balance must be positive, got %.2f", balance)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("interest rate must not be negative, got %.2f", annualRatePercent)
	}
	if monthlyPayment <= 0 {
		return fmt.Errorf("monthly payment must be positive, got %.2f", monthlyPayment)
	}
	return nil
}

// ValidateSavingsInput rejects projection inputs outside the supported bounds.
func ValidateSavingsInput(initialDeposit, monthlyContribution, annualRatePercent float64, years int) error {
	if initialDeposit < 0 {
		return fmt.Errorf("initial deposit must not be negative, got %.2f", initialDeposit)
	}
	if monthlyContribution < 0 {
		return fmt.Errorf("monthly contribution must not be negative, got %.2f", monthlyContribution)
	}
	if annualRatePercent < 0 {
		return fmt.Errorf("interest rate must not be negative, got %.2f", annualRatePercent)
	}
	if years < 1 || years > constants.MaxProjectionYears {
		return fmt.Errorf("years must be between 1 and %d, got %d", constants.MaxProjectionYears, years)
	}
	return nil
}

// NormalizeScoreFactors clamps score factors into their documented ranges
// rather than rejecting them; the sliders that feed this data already
// bound the values, so out-of-range input is clamped defensively.
func NormalizeScoreFactors(f score.Factors) score.Factors {
	f.PaymentHistoryPct = mathutil.Clamp(f.PaymentHistoryPct, 0, 100)
	f.UtilizationPct = mathutil.Clamp(f.UtilizationPct, 0, 100)
	f.CreditAgeYears = mathutil.Max(f.CreditAgeYears, 0)
	f.CreditMixCount = clampInt(f.CreditMixCount, 1, 5)
	if f.HardInquiries < 0 {
		f.HardInquiries = 0
	}
	return f
}

// ValidateEligibilityInput rejects eligibility inputs with missing income
// or unrecognized enumerations.
func ValidateEligibilityInput(input eligibility.Input) error {
	if input.MonthlyIncome <= 0 {
		return fmt.Errorf("monthly income must be positive, got %.2f", input.MonthlyIncome)
	}
	if input.ExistingMonthlyDebt < 0 {
		return fmt.Errorf("existing monthly debt must not be negative, got %.2f", input.ExistingMonthlyDebt)
	}
	if input.CreditScore < constants.ScoreFloor || input.CreditScore > constants.ScoreCeiling {
		return fmt.Errorf("credit score must be between %d and %d, got %d",
			constants.ScoreFloor, constants.ScoreCeiling, input.CreditScore)
	}
	if !contains(eligibility.LoanTypes, input.LoanType) {
		return fmt.Errorf("unknown loan type %q", input.LoanType)
	}
	if !contains(score.EmploymentStatuses, input.EmploymentStatus) {
		return fmt.Errorf("unknown employment status %q", input.EmploymentStatus)
	}
	return nil
}

// ValidateDTIInput rejects ratio inputs with missing income.
func ValidateDTIInput(monthlyIncome, monthlyDebt float64) error {
	if monthlyIncome <= 0 {
		return fmt.Errorf("monthly income must be positive, got %.2f", monthlyIncome)
	}
	if monthlyDebt < 0 {
		return fmt.Errorf("monthly debt must not be negative, got %.2f", monthlyDebt)
	}
	return nil
}

func requireFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
