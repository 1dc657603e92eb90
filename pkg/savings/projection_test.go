package savings

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestProjectTenYearGrowth(t *testing.T) {
	p := NewProjector(zap.NewNop())
	result := p.Project(1000, 200, 5.0, 10)

	if result.FinalBalance != 32832.87 {
		t.Errorf("FinalBalance = %.2f, expected 32832.87", result.FinalBalance)
	}
	if result.TotalContributions != 25000 {
		t.Errorf("TotalContributions = %.2f, expected 25000", result.TotalContributions)
	}
	if result.TotalInterest != 7832.87 {
		t.Errorf("TotalInterest = %.2f, expected 7832.87", result.TotalInterest)
	}

	if len(result.YearlySeries) != 11 {
		t.Fatalf("len(YearlySeries) = %d, expected 11", len(result.YearlySeries))
	}
	start := result.YearlySeries[0]
	if start.Year != 0 || start.Balance != 1000 || start.Interest != 0 {
		t.Errorf("start point = %+v, expected year 0 with balance 1000 and zero interest", start)
	}
	final := result.YearlySeries[10]
	if final.Balance != result.FinalBalance {
		t.Errorf("final series balance = %.2f, expected %.2f", final.Balance, result.FinalBalance)
	}
}

func TestProjectZeroRate(t *testing.T) {
	p := NewProjector(zap.NewNop())
	result := p.Project(1000, 100, 0.0, 2)

	if result.FinalBalance != 3400 {
		t.Errorf("FinalBalance = %.2f, expected 3400", result.FinalBalance)
	}
	if result.TotalContributions != 3400 {
		t.Errorf("TotalContributions = %.2f, expected 3400", result.TotalContributions)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %.2f, expected 0", result.TotalInterest)
	}
}

// A contribution earns interest in the month it is made: contributions
// are added before the month's interest accrues.
func TestProjectContributionBeforeInterest(t *testing.T) {
	p := NewProjector(zap.NewNop())
	result := p.Project(0, 100, 12.0, 1)

	if result.FinalBalance != 1280.93 {
		t.Errorf("FinalBalance = %.2f, expected 1280.93", result.FinalBalance)
	}
	if result.TotalInterest != 80.93 {
		t.Errorf("TotalInterest = %.2f, expected 80.93", result.TotalInterest)
	}
}

// Contributions plus interest must account for the whole final balance.
func TestProjectConservation(t *testing.T) {
	p := NewProjector(zap.NewNop())
	cases := []struct {
		name             string
		initialDeposit   float64
		contribution     float64
		annualRatePercent float64
		years            int
	}{
		{"typical savings", 5000, 250, 4.5, 15},
		{"deposit only", 10000, 0, 7.0, 20},
		{"contributions only", 0, 500, 3.0, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.Project(tc.initialDeposit, tc.contribution, tc.annualRatePercent, tc.years)
			sum := result.TotalContributions + result.TotalInterest
			if math.Abs(sum-result.FinalBalance) > 0.02 {
				t.Errorf("contributions %.2f + interest %.2f = %.2f, final balance %.2f",
					result.TotalContributions, result.TotalInterest, sum, result.FinalBalance)
			}
		})
	}
}

func TestProjectInvalidInput(t *testing.T) {
	p := NewProjector(zap.NewNop())
	tests := []struct {
		name              string
		initialDeposit    float64
		contribution      float64
		annualRatePercent float64
		years             int
	}{
		{"zero years", 1000, 100, 5.0, 0},
		{"years over cap", 1000, 100, 5.0, 51},
		{"negative deposit", -1, 100, 5.0, 10},
		{"negative contribution", 1000, -1, 5.0, 10},
		{"negative rate", 1000, 100, -5.0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Project(tt.initialDeposit, tt.contribution, tt.annualRatePercent, tt.years)
			if result.FinalBalance != 0 || len(result.YearlySeries) != 0 {
				t.Errorf("expected zeroed result, got %+v", result)
			}
		})
	}
}
