package metrics

import "finwell/internal/core"

const (
	projectionStartYear = 2026
	projectionEndYear   = 2040
)

type (
	// WealthPoint is one year of the wealth projection, with and without
	// optimized contributions.
	WealthPoint struct {
		Year      int     `json:"year"`
		Current   float64 `json:"current"`
		Optimized float64 `json:"optimized"`
	}

	// YearPoint is one year of the round-up savings projection.
	YearPoint struct {
		Year  int     `json:"year"`
		Value float64 `json:"value"`
	}
)

// WealthProjection compounds yearly savings over a fixed 15-year horizon at
// 6% assumed annual growth. The "current" track assumes only three quarters
// of the optimized contribution sticks.
func WealthProjection(monthlySavings float64) []WealthPoint {
	base := monthlySavings * 12

	points := make([]WealthPoint, 0, projectionEndYear-projectionStartYear+1)
	for year := projectionStartYear; year <= projectionEndYear; year++ {
		growth := base * (1 + 0.06*float64(year-projectionStartYear))
		points = append(points, WealthPoint{
			Year:      year,
			Current:   core.Round2(growth * 0.75),
			Optimized: core.Round2(growth),
		})
	}
	return points
}

// RoundUpProjection compounds yearly auto-savings at 7% assumed growth over
// the same 15-year horizon.
func RoundUpProjection(monthlyAuto float64) []YearPoint {
	base := monthlyAuto * 12

	points := make([]YearPoint, 0, projectionEndYear-projectionStartYear+1)
	for year := projectionStartYear; year <= projectionEndYear; year++ {
		growth := base * (1 + 0.07*float64(year-projectionStartYear))
		points = append(points, YearPoint{Year: year, Value: core.Round2(growth)})
	}
	return points
}

// RetirementScore folds savings rate and monthly savings into a 10-95 score.
func RetirementScore(savingsRate, monthlySavings float64) int {
	score := int(savingsRate*2.5 + monthlySavings/100)
	if score < 10 {
		score = 10
	}
	if score > 95 {
		score = 95
	}
	return score
}

// RetirementAge maps savings rate onto a projected retirement age band.
func RetirementAge(savingsRate float64) int {
	switch {
	case savingsRate >= 35:
		return 58
	case savingsRate >= 25:
		return 62
	case savingsRate >= 15:
		return 65
	case savingsRate >= 5:
		return 70
	default:
		return 74
	}
}

// MonthlyTarget is the suggested monthly savings target, always above both
// current savings and a floor proportional to expenses.
func MonthlyTarget(monthlySavings, monthlyExpenses float64) float64 {
	target := core.Round2(monthlySavings * 1.15)
	if floor := core.Round2(monthlyExpenses * 0.12); floor > target {
		target = floor
	}
	return target
}
