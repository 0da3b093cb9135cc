package enrich

import (
	"math"
	"math/rand"

	"finwell/internal/core"
)

// EnhanceLegacy is the older, non-deterministic variation pass still used by
// the raw transactions route. Unlike Enhance it takes an explicit random
// source, so callers own the entropy (real randomness in production, a fixed
// seed in tests). Bands and probabilities differ from the deterministic path
// and there is no demo scaling or clamping.
//
// The synthetic "Bonus Credit" is appended with a positive amount tagged
// Lifestyle even though it represents income, which is negative everywhere
// else. Consumers of this route expect that shape; do not flip the sign.
func EnhanceLegacy(list []core.Transaction, rng *rand.Rand) []core.Transaction {
	enhanced := make([]core.Transaction, 0, len(list))

	for _, t := range list {
		nt := t

		if t.Amount < 0 {
			// Payroll variability ±3%.
			nt.Amount = core.Round2(t.Amount * uniform(rng, 0.97, 1.03))

			if rng.Float64() < 0.08 {
				enhanced = append(enhanced, core.Transaction{
					Date:     nt.Date,
					Receiver: "Bonus Credit",
					Amount:   core.Round2(math.Abs(t.Amount) * 0.20),
					Category: core.Lifestyle,
				})
			}
		}

		if t.Amount > 0 {
			// Fixed expenses move little, variable expenses move more.
			var v float64
			if t.Category == core.Housing {
				v = uniform(rng, 0.98, 1.02)
			} else {
				v = uniform(rng, 0.90, 1.10)
			}
			nt.Amount = core.Round2(t.Amount * v)

			if rng.Float64() < 0.15 {
				enhanced = append(enhanced, core.Transaction{
					Date:     nt.Date,
					Receiver: "Impulse Purchase",
					Amount:   core.Round2(uniform(rng, 10, 75)),
					Category: impulseCategories[rng.Intn(len(impulseCategories))],
				})
			}

			if rng.Float64() < 0.03 {
				enhanced = append(enhanced, core.Transaction{
					Date:     nt.Date,
					Receiver: "Unexpected Expense",
					Amount:   core.Round2(uniform(rng, 300, 1200)),
					Category: core.Lifestyle,
				})
			}
		}

		enhanced = append(enhanced, nt)
	}
	return enhanced
}
