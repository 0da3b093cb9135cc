// Package classify holds the rule tables standing in for the risk and
// personality models. A trained classifier once backed the risk label; only
// its rule fallback is reproduced here, since the model artifact is an
// external dependency the service cannot ship.
package classify

// RiskLevel buckets a user into at-risk / moderate / secure from savings
// rate and monthly spend.
func RiskLevel(savingsRate, monthlySpend float64) string {
	switch {
	case savingsRate < 15 || monthlySpend > 5500:
		return "at-risk"
	case savingsRate < 25:
		return "moderate"
	default:
		return "secure"
	}
}

// Personality labels spending behavior from monthly spend thresholds.
func Personality(monthlySpend float64) string {
	switch {
	case monthlySpend > 5500:
		return "Impulse Spender"
	case monthlySpend > 4500:
		return "Balanced Investor"
	default:
		return "Disciplined Saver"
	}
}
