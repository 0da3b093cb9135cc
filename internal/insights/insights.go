// Package insights maps derived behavior metrics onto canned English
// sentences for the insights route.
package insights

import "fmt"

// Report is the insights route payload.
type Report struct {
	AIInsights                []string `json:"ai_insights"`
	BehavioralSignals         []string `json:"behavioral_signals"`
	OptimizationOpportunities []string `json:"optimization_opportunities"`
	TotalInsights             int      `json:"total_insights"`
}

// appendUnique adds text only if not already present. Dedup is whole-string
// equality, not anything semantic.
func appendUnique(list []string, text string) []string {
	for _, s := range list {
		if s == text {
			return list
		}
	}
	return append(list, text)
}

// Generate derives the insight sentences from risk level, lifestyle
// inflation percentage, anomaly count and personality label.
func Generate(riskLevel string, lifestyleInflation float64, anomaliesCount int, personality string) Report {
	// Non-nil so empty lists serialize as [] rather than null.
	ai := []string{}
	signals := []string{}
	optimization := []string{}

	switch riskLevel {
	case "at-risk":
		ai = appendUnique(ai, "Your spending pattern indicates elevated financial risk.")
		signals = appendUnique(signals, "High expense ratio detected relative to savings.")
	case "moderate":
		ai = appendUnique(ai, "Your finances are stable but could improve with better savings discipline.")
	default:
		ai = appendUnique(ai, "Your savings behavior indicates strong long-term financial stability.")
		optimization = appendUnique(optimization, "You are in a strong financial zone — consider investing surplus.")
	}

	if lifestyleInflation > 15 {
		ai = appendUnique(ai, fmt.Sprintf(
			"Lifestyle inflation detected. Spending increased by %v%% over recent months.",
			lifestyleInflation))
		signals = appendUnique(signals, "Lifestyle inflation trend detected in spending behavior.")
	}

	if anomaliesCount > 0 {
		ai = appendUnique(ai, "Impulse spending patterns detected. Consider spending limits.")
		signals = appendUnique(signals, "Spending spikes detected in recent months.")
	} else {
		optimization = appendUnique(optimization, "Recent spending trend is stable or improving.")
	}

	optimization = appendUnique(optimization, fmt.Sprintf("Detected financial personality: %s.", personality))

	return Report{
		AIInsights:                ai,
		BehavioralSignals:         signals,
		OptimizationOpportunities: optimization,
		TotalInsights:             len(ai),
	}
}
