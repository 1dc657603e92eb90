package loans

import (
	"math"
	"testing"

	"github.com/credwise/credwise/pkg/mathutil"
	"github.com/credwise/credwise/pkg/rate"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termMonths        int
		expected          float64
		tolerance         float64
	}{
		{
			name:              "Standard 30-year mortgage",
			principal:         200000,
			annualRatePercent: 5.5,
			termMonths:        360,
			expected:          1135.58,
			tolerance:         0.01,
		},
		{
			name:              "5-year car loan",
			principal:         25000,
			annualRatePercent: 4.0,
			termMonths:        60,
			expected:          460.41,
			tolerance:         0.01,
		},
		{
			name:              "Zero interest loan",
			principal:         12000,
			annualRatePercent: 0.0,
			termMonths:        60,
			expected:          200.00,
			tolerance:         0,
		},
		{
			name:              "Zero principal",
			principal:         0,
			annualRatePercent: 5.0,
			termMonths:        60,
			expected:          0,
			tolerance:         0,
		},
		{
			name:              "Term below one month",
			principal:         10000,
			annualRatePercent: 5.0,
			termMonths:        0,
			expected:          0,
			tolerance:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Payment(tt.principal, rate.Monthly(tt.annualRatePercent), tt.termMonths)
			if math.Abs(mathutil.Round(result)-tt.expected) > tt.tolerance {
				t.Errorf("Payment() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

// The annuity formula and its inverse must agree: the payment that a
// principal requires must recover that principal through MaxPrincipal.
func TestPaymentMaxPrincipalRoundTrip(t *testing.T) {
	cases := []struct {
		principal         float64
		annualRatePercent float64
		termMonths        int
	}{
		{200000, 5.5, 360},
		{25000, 4.0, 60},
		{5000, 18.99, 36},
		{12000, 0.0, 60},
	}

	for _, tc := range cases {
		monthlyRate := rate.Monthly(tc.annualRatePercent)
		payment := Payment(tc.principal, monthlyRate, tc.termMonths)
		recovered := MaxPrincipal(payment, monthlyRate, tc.termMonths)
		if math.Abs(recovered-tc.principal) > 0.01 {
			t.Errorf("MaxPrincipal(Payment(%.2f)) = %.2f, expected %.2f",
				tc.principal, recovered, tc.principal)
		}
	}
}

func TestMaxPrincipal(t *testing.T) {
	tests := []struct {
		name              string
		maxMonthlyPayment float64
		annualRatePercent float64
		termMonths        int
		expectedRange     []float64
	}{
		{
			name:              "Mortgage capacity at 6 percent",
			maxMonthlyPayment: 650,
			annualRatePercent: 6.0,
			termMonths:        360,
			expectedRange:     []float64{108000, 109000},
		},
		{
			name:              "Zero rate degrades to payment times term",
			maxMonthlyPayment: 500,
			annualRatePercent: 0.0,
			termMonths:        60,
			expectedRange:     []float64{30000, 30000},
		},
		{
			name:              "Zero payment",
			maxMonthlyPayment: 0,
			annualRatePercent: 6.0,
			termMonths:        360,
			expectedRange:     []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MaxPrincipal(tt.maxMonthlyPayment, rate.Monthly(tt.annualRatePercent), tt.termMonths)
			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("MaxPrincipal() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestInterestPortion(t *testing.T) {
	tests := []struct {
		name              string
		balance           float64
		annualRatePercent float64
		expected          float64
	}{
		{"10k at 12 percent", 10000, 12.0, 100.00},
		{"200k at 5.5 percent", 200000, 5.5, 916.67},
		{"zero balance", 0, 12.0, 0},
		{"zero rate", 10000, 0.0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestPortion(tt.balance, rate.Monthly(tt.annualRatePercent))
			if math.Abs(mathutil.Round(result)-tt.expected) > 0.001 {
				t.Errorf("InterestPortion() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}
