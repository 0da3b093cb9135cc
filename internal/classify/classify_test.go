package classify

import "testing"

func TestRiskLevel(t *testing.T) {
	cases := []struct {
		rate, spend float64
		want        string
	}{
		{10, 1000, "at-risk"},
		{30, 6000, "at-risk"},
		{20, 1000, "moderate"},
		{30, 1000, "secure"},
		{0, 0, "at-risk"},
	}
	for _, tc := range cases {
		if got := RiskLevel(tc.rate, tc.spend); got != tc.want {
			t.Errorf("RiskLevel(%v, %v) = %q, want %q", tc.rate, tc.spend, got, tc.want)
		}
	}
}

func TestPersonality(t *testing.T) {
	cases := []struct {
		spend float64
		want  string
	}{
		{6000, "Impulse Spender"},
		{5000, "Balanced Investor"},
		{4500, "Disciplined Saver"},
		{0, "Disciplined Saver"},
	}
	for _, tc := range cases {
		if got := Personality(tc.spend); got != tc.want {
			t.Errorf("Personality(%v) = %q, want %q", tc.spend, got, tc.want)
		}
	}
}
