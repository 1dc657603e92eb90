package score

import "testing"

func TestEstimateCreditScore(t *testing.T) {
	tests := []struct {
		name     string
		factors  Factors
		expected int
	}{
		{
			name: "solid mid-range profile",
			factors: Factors{
				PaymentHistoryPct: 95,
				UtilizationPct:    30,
				CreditAgeYears:    5,
				CreditMixCount:    3,
				HardInquiries:     2,
			},
			expected: 717,
		},
		{
			name: "perfect profile hits the ceiling",
			factors: Factors{
				PaymentHistoryPct: 100,
				UtilizationPct:    0,
				CreditAgeYears:    10,
				CreditMixCount:    5,
				HardInquiries:     0,
			},
			expected: 850,
		},
		{
			name: "empty profile hits the floor",
			factors: Factors{
				PaymentHistoryPct: 0,
				UtilizationPct:    100,
				CreditAgeYears:    0,
				CreditMixCount:    0,
				HardInquiries:     10,
			},
			expected: 300,
		},
		{
			name: "credit age caps at ten years",
			factors: Factors{
				PaymentHistoryPct: 100,
				UtilizationPct:    0,
				CreditAgeYears:    40,
				CreditMixCount:    5,
				HardInquiries:     0,
			},
			expected: 850,
		},
		{
			name: "excess inquiries clamp at the floor",
			factors: Factors{
				PaymentHistoryPct: 0,
				UtilizationPct:    100,
				CreditAgeYears:    0,
				CreditMixCount:    0,
				HardInquiries:     25,
			},
			expected: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EstimateCreditScore(tt.factors); result != tt.expected {
				t.Errorf("EstimateCreditScore() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestEstimateCreditScoreMonotonic(t *testing.T) {
	base := Factors{
		PaymentHistoryPct: 80,
		UtilizationPct:    40,
		CreditAgeYears:    6,
		CreditMixCount:    3,
		HardInquiries:     2,
	}
	baseScore := EstimateCreditScore(base)

	better := base
	better.PaymentHistoryPct = 100
	if EstimateCreditScore(better) <= baseScore {
		t.Error("higher payment history did not raise the score")
	}

	worse := base
	worse.UtilizationPct = 90
	if EstimateCreditScore(worse) >= baseScore {
		t.Error("higher utilization did not lower the score")
	}

	worse = base
	worse.HardInquiries = 6
	if EstimateCreditScore(worse) >= baseScore {
		t.Error("more inquiries did not lower the score")
	}
}

func TestEstimateCreditScoreBounds(t *testing.T) {
	extremes := []Factors{
		{PaymentHistoryPct: -50, UtilizationPct: 200, CreditAgeYears: -3, CreditMixCount: -1, HardInquiries: 100},
		{PaymentHistoryPct: 500, UtilizationPct: -500, CreditAgeYears: 1000, CreditMixCount: 50, HardInquiries: -5},
	}
	for _, f := range extremes {
		result := EstimateCreditScore(f)
		if result < 300 || result > 850 {
			t.Errorf("EstimateCreditScore(%+v) = %d, expected within [300, 850]", f, result)
		}
	}
}

func TestCreditRating(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{850, "Exceptional"},
		{800, "Exceptional"},
		{799, "Very Good"},
		{740, "Very Good"},
		{717, "Good"},
		{670, "Good"},
		{669, "Fair"},
		{580, "Fair"},
		{579, "Poor"},
		{300, "Poor"},
	}

	for _, tt := range tests {
		if result := CreditRating(tt.score); result != tt.expected {
			t.Errorf("CreditRating(%d) = %q, expected %q", tt.score, result, tt.expected)
		}
	}
}
