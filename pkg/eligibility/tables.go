package eligibility

// Loan types recognized by the resolver.
const (
	LoanTypeMortgage = "mortgage"
	LoanTypeAuto     = "auto"
	LoanTypePersonal = "personal"
	LoanTypeStudent  = "student"
)

// LoanTypes lists the accepted loan type values.
var LoanTypes = []string{LoanTypeMortgage, LoanTypeAuto, LoanTypePersonal, LoanTypeStudent}

// Maximum allowed DTI percentage per loan type. 43 is the qualified
// mortgage standard and also the fallback for unknown types.
var maxDTIByLoanType = map[string]float64{
	LoanTypeMortgage: 43,
	LoanTypeAuto:     50,
	LoanTypePersonal: 40,
	LoanTypeStudent:  45,
}

const defaultMaxDTI = 43

// rateRow is one row of a rate sheet: the lowest credit score that
// qualifies for the rate. Rows are ordered descending and scanned
// top-down, first match wins; boundary scores get the better rate.
type rateRow struct {
	minScore   int
	annualRate float64
}

// rateSheet holds the bracketed rates and fixed term for one loan type.
type rateSheet struct {
	rows         []rateRow
	fallbackRate float64
	termMonths   int
}

var rateSheets = map[string]rateSheet{
	LoanTypeMortgage: {
		rows: []rateRow{
			{760, 5.5},
			{700, 6.0},
			{660, 6.5},
			{620, 7.0},
		},
		fallbackRate: 8.0,
		termMonths:   30 * 12,
	},
	LoanTypeAuto: {
		rows: []rateRow{
			{760, 4.5},
			{700, 5.0},
			{660, 6.0},
			{620, 7.5},
		},
		fallbackRate: 10.0,
		termMonths:   5 * 12,
	},
	LoanTypePersonal: {
		rows: []rateRow{
			{760, 7.0},
			{700, 9.0},
			{660, 12.0},
			{620, 15.0},
		},
		fallbackRate: 20.0,
		termMonths:   3 * 12,
	},
	// Student loans use a single fixed rate regardless of score.
	LoanTypeStudent: {
		fallbackRate: 6.5,
		termMonths:   10 * 12,
	},
}

var defaultRateSheet = rateSheet{
	fallbackRate: 7.0,
	termMonths:   5 * 12,
}

// MaxDTIForLoanType returns the maximum allowed DTI percentage for a loan type.
func MaxDTIForLoanType(loanType string) float64 {
	if maxDTI, ok := maxDTIByLoanType[loanType]; ok {
		return maxDTI
	}
	return defaultMaxDTI
}

// RateAndTerm resolves the interest rate and term for a loan type and
// credit score from the rate sheets.
func RateAndTerm(loanType string, creditScore int) (annualRatePercent float64, termMonths int) {
	sheet, ok := rateSheets[loanType]
	if !ok {
		sheet = defaultRateSheet
	}
	for _, row := range sheet.rows {
		if creditScore >= row.minScore {
			return row.annualRate, sheet.termMonths
		}
	}
	return sheet.fallbackRate, sheet.termMonths
}
