package score

// Employment status categories recognized by the approval heuristic.
const (
	EmploymentFullTime     = "full-time"
	EmploymentPartTime     = "part-time"
	EmploymentSelfEmployed = "self-employed"
	EmploymentRetired      = "retired"
	EmploymentUnemployed   = "unemployed"
)

// EmploymentStatuses lists the accepted employment status values.
var EmploymentStatuses = []string{
	EmploymentFullTime,
	EmploymentPartTime,
	EmploymentSelfEmployed,
	EmploymentRetired,
	EmploymentUnemployed,
}

// Approval points are summed directly as a percentage: up to 40 from the
// credit-score bracket, up to 40 from DTI headroom, up to 20 from the
// employment category. Lenders quote these as discrete tiers off a rate
// sheet rather than continuous functions.
var approvalScoreBrackets = []struct {
	minScore float64
	points   float64
}{
	{760, 40},
	{700, 35},
	{660, 25},
	{620, 15},
}

const approvalScoreFallback = 5

// DTI tiers compare the current ratio against a fraction of the maximum
// allowed for the loan type. Ties resolve to the better tier (inclusive).
var approvalDTITiers = []struct {
	maxFraction float64
	points      float64
}{
	{0.5, 40},
	{0.7, 30},
	{0.9, 20},
	{1.0, 10},
}

var approvalEmploymentPoints = map[string]float64{
	EmploymentFullTime:     20,
	EmploymentPartTime:     15,
	EmploymentRetired:      15,
	EmploymentSelfEmployed: 10,
	EmploymentUnemployed:   5,
}

const approvalEmploymentFallback = 5

// ApprovalChance estimates the percentage chance of loan approval from a
// credit score, the current debt-to-income ratio relative to the maximum
// allowed, and the employment status. Output is in [0, 100].
func ApprovalChance(creditScore int, currentDTI, maxDTI float64, employmentStatus string) int {
	chance := 0.0

	matched := false
	for _, bracket := range approvalScoreBrackets {
		if float64(creditScore) >= bracket.minScore {
			chance += bracket.points
			matched = true
			break
		}
	}
	if !matched {
		chance += approvalScoreFallback
	}

	for _, tier := range approvalDTITiers {
		if currentDTI <= maxDTI*tier.maxFraction {
			chance += tier.points
			break
		}
	}

	if points, ok := approvalEmploymentPoints[employmentStatus]; ok {
		chance += points
	} else {
		chance += approvalEmploymentFallback
	}

	return int(chance)
}

// ApprovalRating maps an approval chance onto its consumer-facing band.
func ApprovalRating(chancePct int) string {
	for _, band := range approvalRatings {
		if float64(chancePct) >= band.threshold {
			return band.label
		}
	}
	return "Very Poor"
}

var approvalRatings = []ratingBand{
	{80, "Excellent"},
	{60, "Good"},
	{40, "Fair"},
	{20, "Poor"},
}
