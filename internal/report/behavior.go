// Package report folds an enriched transaction list into the per-route
// response payloads.
package report

import (
	"finwell/internal/classify"
	"finwell/internal/core"
	"finwell/internal/metrics"
)

// behaviorIncomeFactor infers income as a fixed multiple of spend, assuming
// the user saves roughly 15-25% of income. The sandbox rarely carries a real
// income figure.
const behaviorIncomeFactor = 1.25

// Behavior is the spending-behavior route payload.
type Behavior struct {
	MonthlySpend       float64                 `json:"monthly_spend"`
	SavingsRate        float64                 `json:"savings_rate"`
	LifestyleInflation float64                 `json:"lifestyle_inflation"`
	AnomaliesCount     int                     `json:"anomalies_count"`
	Categories         []metrics.CategoryTotal `json:"categories"`
	MonthlyTrend       []metrics.TrendPoint    `json:"monthly_trend"`
	Anomalies          []metrics.Anomaly       `json:"anomalies"`
	RiskLevel          string                  `json:"risk_level"`
	Personality        string                  `json:"personality"`

	// InflationLevel feeds the insight rules; it is not part of the JSON
	// contract.
	InflationLevel string `json:"-"`
}

// BuildBehavior derives all spending-behavior metrics from the list.
func BuildBehavior(list []core.Transaction) Behavior {
	spend := metrics.MonthlySpend(list)
	income := metrics.EstimateIncome(spend, behaviorIncomeFactor)
	rate := metrics.SavingsRate(income, spend)

	trend := metrics.MonthlyTrend(list, spend)
	level, inflation := metrics.LifestyleInflation(trend)
	anomalies := metrics.DetectAnomalies(trend)

	categories := metrics.CategoryTotals(list)
	if categories == nil {
		categories = []metrics.CategoryTotal{}
	}
	if anomalies == nil {
		anomalies = []metrics.Anomaly{}
	}

	return Behavior{
		MonthlySpend:       spend,
		SavingsRate:        rate,
		LifestyleInflation: inflation,
		AnomaliesCount:     len(anomalies),
		Categories:         categories,
		MonthlyTrend:       trend,
		Anomalies:          anomalies,
		RiskLevel:          classify.RiskLevel(rate, spend),
		Personality:        classify.Personality(spend),
		InflationLevel:     level,
	}
}
