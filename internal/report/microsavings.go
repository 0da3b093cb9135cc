package report

import (
	"finwell/internal/core"
	"finwell/internal/metrics"
)

// recentRoundUps is how many round-ups the UI surfaces.
const recentRoundUps = 8

// Microsavings is the round-up savings route payload.
type Microsavings struct {
	TotalSaved     float64             `json:"total_saved"`
	RoundupsToday  float64             `json:"roundups_today"`
	MonthlyAuto    float64             `json:"monthly_auto"`
	Projected15Yr  float64             `json:"projected_15yr"`
	Projection     []metrics.YearPoint `json:"projection"`
	RecentRoundups []metrics.RoundUp   `json:"recent_roundups"`
}

// BuildMicrosavings derives round-up totals and their long-term projection.
func BuildMicrosavings(list []core.Transaction) Microsavings {
	roundups, total := metrics.RoundUps(list)

	recent := roundups
	if len(recent) > recentRoundUps {
		recent = recent[:recentRoundUps]
	}
	if recent == nil {
		recent = []metrics.RoundUp{}
	}

	monthlyAuto := core.Round2(total * 4)
	base := monthlyAuto * 12

	return Microsavings{
		TotalSaved:     total,
		RoundupsToday:  total,
		MonthlyAuto:    monthlyAuto,
		Projected15Yr:  core.Round2(base * 15 * 1.08),
		Projection:     metrics.RoundUpProjection(monthlyAuto),
		RecentRoundups: recent,
	}
}
