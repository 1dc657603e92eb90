package rate

import (
	"math"
	"testing"
)

func TestMonthly(t *testing.T) {
	tests := []struct {
		name          string
		annualPercent float64
		expected      float64
	}{
		{"12 percent APR", 12.0, 0.01},
		{"6 percent APR", 6.0, 0.005},
		{"zero rate", 0.0, 0.0},
		{"18.99 percent APR", 18.99, 18.99 / 100 / 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Monthly(tt.annualPercent)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Monthly(%.2f) = %v, expected %v", tt.annualPercent, result, tt.expected)
			}
		})
	}
}

func TestAnnualFromMonthlyRoundTrip(t *testing.T) {
	for _, annual := range []float64{0, 3.25, 5.5, 12.0, 24.99} {
		back := AnnualFromMonthly(Monthly(annual))
		if math.Abs(back-annual) > 1e-9 {
			t.Errorf("AnnualFromMonthly(Monthly(%.2f)) = %v, expected %.2f", annual, back, annual)
		}
	}
}
