// Package metrics contains the pure derivations over an enriched transaction
// list: category totals, monthly figures, savings rate, trend analysis,
// round-ups and the retirement arithmetic. Every function is a stateless fold
// with no side effects.
package metrics

import (
	"fmt"
	"math"
	"sort"

	"finwell/internal/core"
)

type (
	// CategoryTotal is the summed amount for one UI category.
	CategoryTotal struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	// TrendPoint is the summed amount for one calendar month (YYYY-MM).
	TrendPoint struct {
		Month string  `json:"month"`
		Value float64 `json:"value"`
	}

	// Anomaly marks a month whose spend spikes well above the average.
	Anomaly struct {
		Month  string  `json:"month"`
		Value  float64 `json:"value"`
		Impact string  `json:"impact"`
		Type   string  `json:"type"`
	}
)

// CategoryTotals sums amounts per category, two-decimal rounded per group.
// Categories appear in first-seen order.
func CategoryTotals(list []core.Transaction) []CategoryTotal {
	totals := make(map[core.Category]float64)
	var order []core.Category
	for _, t := range list {
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Name: string(c), Value: core.Round2(totals[c])})
	}
	return out
}

// MonthlySpend is the sum of all positive (expense) amounts.
func MonthlySpend(list []core.Transaction) float64 {
	var sum float64
	for _, t := range list {
		if t.Amount > 0 {
			sum += t.Amount
		}
	}
	return core.Round2(sum)
}

// MonthlyTrend groups amounts by the year-month prefix of the date, sorted
// ascending by month key. An empty list yields a single synthetic "Current"
// point carrying the given spend so charts always have data.
func MonthlyTrend(list []core.Transaction, monthlySpend float64) []TrendPoint {
	totals := make(map[string]float64)
	for _, t := range list {
		if len(t.Date) < 7 {
			continue
		}
		totals[t.Date[:7]] += t.Amount
	}

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	trend := make([]TrendPoint, 0, len(months))
	for _, m := range months {
		trend = append(trend, TrendPoint{Month: m, Value: core.Round2(totals[m])})
	}
	if len(trend) == 0 {
		trend = []TrendPoint{{Month: "Current", Value: monthlySpend}}
	}
	return trend
}

// EstimateIncome derives income from spend with a fixed multiplier. The real
// income field is unreliable in the sandbox data, so income is inferred, not
// observed. Zero spend means zero income.
func EstimateIncome(monthlySpend, factor float64) float64 {
	if monthlySpend == 0 {
		return 0
	}
	return monthlySpend * factor
}

// SavingsRate is (income - expenses) / income as a percentage, one-decimal
// rounded. Zero income always yields zero, never a division error.
func SavingsRate(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return core.Round1((income - expenses) / income * 100)
}

// SpendingScore buckets monthly spend into an ad hoc ordinal health score.
func SpendingScore(monthlySpend float64) int {
	switch {
	case monthlySpend == 0:
		return 50
	case monthlySpend < 1000:
		return 85
	case monthlySpend < 3000:
		return 70
	case monthlySpend < 6000:
		return 55
	default:
		return 40
	}
}

// LifestyleInflation compares the latest month against the mean of all prior
// months. Fewer than three months of data, or a baseline under 500, reads as
// stable (guards against noisy small-sample percentages). The percentage is
// clamped to [-30, 40] and bucketed: >20 high, >8 moderate, else stable.
func LifestyleInflation(trend []TrendPoint) (level string, pct float64) {
	if len(trend) < 3 {
		return "stable", 0
	}

	var baseline float64
	for _, p := range trend[:len(trend)-1] {
		baseline += p.Value
	}
	baseline /= float64(len(trend) - 1)
	latest := trend[len(trend)-1].Value

	if baseline < 500 {
		return "stable", 0
	}

	inflation := (latest - baseline) / baseline * 100
	inflation = math.Max(-30, math.Min(inflation, 40))

	switch {
	case inflation > 20:
		level = "high"
	case inflation > 8:
		level = "moderate"
	default:
		level = "stable"
	}
	return level, core.Round1(inflation)
}

// DetectAnomalies flags months whose value exceeds 1.3x the mean of all
// months. Fewer than two points (or a zero mean) yields no anomalies.
func DetectAnomalies(trend []TrendPoint) []Anomaly {
	if len(trend) < 2 {
		return nil
	}

	var avg float64
	for _, p := range trend {
		avg += p.Value
	}
	avg /= float64(len(trend))
	if avg == 0 {
		return nil
	}

	var anomalies []Anomaly
	for _, p := range trend {
		if p.Value > avg*1.3 {
			percent := core.Round1((p.Value - avg) / avg * 100)
			impact := fmt.Sprintf("%.1f%%", percent)
			if percent > 0 {
				impact = "+" + impact
			}
			anomalies = append(anomalies, Anomaly{
				Month:  p.Month,
				Value:  p.Value,
				Impact: impact,
				Type:   "spike",
			})
		}
	}
	return anomalies
}
