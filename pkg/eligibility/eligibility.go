// Package eligibility bounds the maximum loan a borrower qualifies for
// and estimates their approval chances.
package eligibility

import (
	"fmt"

	"github.com/credwise/credwise/pkg/dti"
	"github.com/credwise/credwise/pkg/loans"
	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/rate"
	"github.com/credwise/credwise/pkg/score"
	"go.uber.org/zap"
)

// Input is a borrower's financial profile for an eligibility check.
type Input struct {
	MonthlyIncome       float64 `json:"monthlyIncome"`
	ExistingMonthlyDebt float64 `json:"existingMonthlyDebt"`
	CreditScore         int     `json:"creditScore"`
	LoanType            string  `json:"loanType"`
	EmploymentStatus    string  `json:"employmentStatus"`
}

// Result is the outcome of an eligibility check.
type Result struct {
	MaxEligiblePrincipal float64  `json:"maxEligiblePrincipal"`
	ApprovalChancePct    int      `json:"approvalChancePct"`
	ApprovalRating       string   `json:"approvalRating"`
	MaxDTI               float64  `json:"maxDTI"`
	CurrentDTI           float64  `json:"currentDTI"`
	InterestRate         float64  `json:"interestRate"`
	TermMonths           int      `json:"termMonths"`
	Tips                 []string `json:"tips"`
}

// Advisory tip thresholds. Tips fire in a fixed order so the list is
// stable for a given input.
const (
	tipScoreThreshold    = 700
	tipDTIFraction       = 0.8
	tipApprovalThreshold = 50
)

const (
	tipImproveScore = "Improve your credit score to qualify for better interest rates and higher loan amounts."
	tipReduceDebt   = "Your debt-to-income ratio is high. Consider paying down existing debts before applying for a new loan."
	tipStableIncome = "Lenders prefer borrowers with stable, full-time employment. Consider applying after securing more stable income."
	tipCoSigner     = "Consider applying with a co-signer to improve your chances of approval."
	tipStrong       = "You have a strong application profile. Shop around for the best rates."
)

// Resolver computes loan eligibility from rate sheets and DTI headroom.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a resolver instance.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// Resolve determines the maximum eligible principal, approval chance, and
// advisory tips for a borrower. The principal is the inverse annuity of
// the payment the remaining DTI capacity supports, floored to the nearest
// thousand. Non-positive income yields a zeroed result.
func (r *Resolver) Resolve(input Input) Result {
	var result Result
	if input.MonthlyIncome <= 0 {
		return result
	}

	result.CurrentDTI = dti.Ratio(input.MonthlyIncome, input.ExistingMonthlyDebt)
	result.MaxDTI = MaxDTIForLoanType(input.LoanType)
	result.InterestRate, result.TermMonths = RateAndTerm(input.LoanType, input.CreditScore)

	remainingCapacity := mathutil.Max(0, result.MaxDTI-result.CurrentDTI)
	maxMonthlyPayment := mathutil.ApplyPercentage(input.MonthlyIncome, remainingCapacity)

	maxPrincipal := loans.MaxPrincipal(maxMonthlyPayment, rate.Monthly(result.InterestRate), result.TermMonths)
	result.MaxEligiblePrincipal = mathutil.FloorToThousand(maxPrincipal)

	result.ApprovalChancePct = score.ApprovalChance(
		input.CreditScore, result.CurrentDTI, result.MaxDTI, input.EmploymentStatus)
	result.ApprovalRating = score.ApprovalRating(result.ApprovalChancePct)

	result.Tips = r.buildTips(input, result)

	r.logger.Debug(fmt.Sprintf("resolved %s eligibility for score %d", input.LoanType, input.CreditScore),
		zap.String("op", "eligibility.Resolve"),
		zap.Float64("maxPrincipal", result.MaxEligiblePrincipal),
		zap.Int("approvalChance", result.ApprovalChancePct),
	)

	return result
}

// buildTips assembles advisory tips in a fixed check order; when nothing
// fires the single encouraging default is returned, so the list is never
// empty.
func (r *Resolver) buildTips(input Input, result Result) []string {
	var tips []string

	if input.CreditScore < tipScoreThreshold {
		tips = append(tips, tipImproveScore)
	}
	if result.CurrentDTI > result.MaxDTI*tipDTIFraction {
		tips = append(tips, tipReduceDebt)
	}
	if input.EmploymentStatus != score.EmploymentFullTime && input.EmploymentStatus != score.EmploymentRetired {
		tips = append(tips, tipStableIncome)
	}
	if result.ApprovalChancePct < tipApprovalThreshold {
		tips = append(tips, tipCoSigner)
	}

	if len(tips) == 0 {
		tips = append(tips, tipStrong)
	}
	return tips
}
