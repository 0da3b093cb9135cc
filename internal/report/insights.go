package report

import (
	"finwell/internal/core"
	"finwell/internal/insights"
)

// BuildInsights derives the textual insight set from the behavior metrics.
func BuildInsights(list []core.Transaction) insights.Report {
	b := BuildBehavior(list)
	return insights.Generate(b.RiskLevel, b.LifestyleInflation, b.AnomaliesCount, b.Personality)
}
