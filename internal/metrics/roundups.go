package metrics

import (
	"math"
	"sort"

	"finwell/internal/core"
)

// RoundUp is the spare change between an expense and the next whole unit.
type RoundUp struct {
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	RoundUp  float64 `json:"roundup"`
}

// RoundUps computes ceil(amount)-amount for every expense transaction.
// Exact-zero round-ups are floored at 0.01 so the UI never shows 0.00;
// anything outside (0, 1] is discarded. Results are newest-first. The second
// return is the two-decimal total across all surfaced round-ups.
func RoundUps(list []core.Transaction) ([]RoundUp, float64) {
	var (
		roundups []RoundUp
		total    float64
	)

	for _, t := range list {
		if t.Amount <= 0 {
			continue
		}

		r := core.Round2(math.Ceil(t.Amount) - t.Amount)
		if r == 0 {
			r = 0.01
		}
		if r < 0 || r > 1 {
			continue
		}

		total += r
		roundups = append(roundups, RoundUp{
			Date:     t.Date,
			Merchant: t.Receiver,
			Amount:   core.Round2(t.Amount),
			RoundUp:  r,
		})
	}

	sort.SliceStable(roundups, func(i, j int) bool {
		return roundups[i].Date > roundups[j].Date
	})
	return roundups, core.Round2(total)
}
