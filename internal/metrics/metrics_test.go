package metrics

import (
	"math"
	"testing"

	"finwell/internal/core"
)

// amounts chosen binary-exact so float sums stay exact
func testList() []core.Transaction {
	return []core.Transaction{
		{Date: "2025-04-01", Receiver: "Oakwood Apartments", Amount: 1450.25, Category: core.Housing},
		{Date: "2025-04-03", Receiver: "Fresh Mart", Amount: 92.5, Category: core.Food},
		{Date: "2025-05-02", Receiver: "Metro Transit", Amount: 48.75, Category: core.Transport},
		{Date: "2025-05-14", Receiver: "Maxi Store", Amount: 134.5, Category: core.Shopping},
		{Date: "2025-06-08", Receiver: "Stream Plus", Amount: 16.25, Category: core.Lifestyle},
		{Date: "2025-06-25", Receiver: "Acme Payroll", Amount: -2600, Category: core.Lifestyle},
	}
}

func TestCategoryTotalsConservation(t *testing.T) {
	list := testList()

	var direct float64
	for _, tx := range list {
		direct += tx.Amount
	}

	var grouped float64
	for _, ct := range CategoryTotals(list) {
		grouped += ct.Value
	}

	if math.Abs(grouped-core.Round2(direct)) > 1e-9 {
		t.Fatalf("category totals %v do not conserve direct sum %v", grouped, direct)
	}
}

func TestCategoryTotalsGrouping(t *testing.T) {
	totals := CategoryTotals(testList())
	if len(totals) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(totals))
	}
	// Lifestyle groups the expense and the income record
	for _, ct := range totals {
		if ct.Name == "Lifestyle" && ct.Value != -2583.75 {
			t.Errorf("Lifestyle total = %v, want -2583.75", ct.Value)
		}
	}
}

func TestMonthlySpend(t *testing.T) {
	if got := MonthlySpend(testList()); got != 1742.25 {
		t.Fatalf("MonthlySpend = %v, want 1742.25", got)
	}
	if got := MonthlySpend(nil); got != 0 {
		t.Fatalf("MonthlySpend(nil) = %v, want 0", got)
	}
}

func TestMonthlyTrend(t *testing.T) {
	trend := MonthlyTrend(testList(), 0)
	if len(trend) != 3 {
		t.Fatalf("expected 3 months, got %d", len(trend))
	}
	wantMonths := []string{"2025-04", "2025-05", "2025-06"}
	for i, m := range wantMonths {
		if trend[i].Month != m {
			t.Errorf("trend[%d].Month = %q, want %q", i, trend[i].Month, m)
		}
	}
	if trend[0].Value != 1542.75 {
		t.Errorf("2025-04 total = %v, want 1542.75", trend[0].Value)
	}
}

func TestMonthlyTrendEmptyFallback(t *testing.T) {
	trend := MonthlyTrend(nil, 123.45)
	if len(trend) != 1 || trend[0].Month != "Current" || trend[0].Value != 123.45 {
		t.Fatalf("fallback point wrong: %v", trend)
	}
}

func TestEstimateIncome(t *testing.T) {
	if got := EstimateIncome(0, 1.25); got != 0 {
		t.Errorf("zero spend must yield zero income, got %v", got)
	}
	if got := EstimateIncome(1000, 1.25); got != 1250 {
		t.Errorf("EstimateIncome(1000, 1.25) = %v, want 1250", got)
	}
}

func TestSavingsRate(t *testing.T) {
	cases := []struct {
		income, expenses, want float64
	}{
		{0, 500, 0}, // never a division error
		{1250, 1000, 20},
		{1000, 1000, 0},
		{1000, 1100, -10},
	}
	for _, tc := range cases {
		if got := SavingsRate(tc.income, tc.expenses); got != tc.want {
			t.Errorf("SavingsRate(%v, %v) = %v, want %v", tc.income, tc.expenses, got, tc.want)
		}
	}
}

func TestSpendingScore(t *testing.T) {
	cases := []struct {
		spend float64
		want  int
	}{
		{0, 50},
		{500, 85},
		{999.99, 85},
		{1000, 70},
		{2999.99, 70},
		{3000, 55},
		{5999.99, 55},
		{6000, 40},
	}
	for _, tc := range cases {
		if got := SpendingScore(tc.spend); got != tc.want {
			t.Errorf("SpendingScore(%v) = %d, want %d", tc.spend, got, tc.want)
		}
	}
}

func TestLifestyleInflation(t *testing.T) {
	tests := []struct {
		name      string
		trend     []TrendPoint
		wantLevel string
		wantPct   float64
	}{
		{
			name:      "fewer than three points",
			trend:     []TrendPoint{{"2025-01", 1000}, {"2025-02", 2000}},
			wantLevel: "stable",
			wantPct:   0,
		},
		{
			name:      "baseline under 500",
			trend:     []TrendPoint{{"2025-01", 100}, {"2025-02", 100}, {"2025-03", 400}},
			wantLevel: "stable",
			wantPct:   0,
		},
		{
			name:      "moderate",
			trend:     []TrendPoint{{"2025-01", 600}, {"2025-02", 600}, {"2025-03", 700}},
			wantLevel: "moderate",
			wantPct:   16.7,
		},
		{
			name:      "clamped high",
			trend:     []TrendPoint{{"2025-01", 1000}, {"2025-02", 1000}, {"2025-03", 10000}},
			wantLevel: "high",
			wantPct:   40,
		},
		{
			name:      "clamped negative",
			trend:     []TrendPoint{{"2025-01", 1000}, {"2025-02", 1000}, {"2025-03", 100}},
			wantLevel: "stable",
			wantPct:   -30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, pct := LifestyleInflation(tt.trend)
			if level != tt.wantLevel || pct != tt.wantPct {
				t.Fatalf("got (%q, %v), want (%q, %v)", level, pct, tt.wantLevel, tt.wantPct)
			}
		})
	}
}

func TestDetectAnomaliesBoundary(t *testing.T) {
	// 1400 < 1.3 x mean(1000, 1000, 1400) = 1473.33, so no anomaly
	trend := []TrendPoint{{"2025-01", 1000}, {"2025-02", 1000}, {"2025-03", 1400}}
	if got := DetectAnomalies(trend); len(got) != 0 {
		t.Fatalf("boundary case must not flag: %v", got)
	}
}

func TestDetectAnomaliesSpike(t *testing.T) {
	trend := []TrendPoint{{"2025-01", 1000}, {"2025-02", 1000}, {"2025-03", 2000}}
	got := DetectAnomalies(trend)
	if len(got) != 1 {
		t.Fatalf("expected one spike, got %v", got)
	}
	a := got[0]
	if a.Month != "2025-03" || a.Type != "spike" || a.Value != 2000 {
		t.Errorf("unexpected anomaly %+v", a)
	}
	if a.Impact != "+50.0%" {
		t.Errorf("impact %q, want +50.0%%", a.Impact)
	}
}

func TestDetectAnomaliesSmallSample(t *testing.T) {
	if got := DetectAnomalies([]TrendPoint{{"2025-01", 9000}}); got != nil {
		t.Fatalf("single point must not flag: %v", got)
	}
	if got := DetectAnomalies(nil); got != nil {
		t.Fatalf("empty trend must not flag: %v", got)
	}
}
