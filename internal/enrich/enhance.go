// Package enrich turns a small set of cleaned aggregator records into a
// larger, lived-in transaction stream. The primary path is deterministic:
// every random draw for a record is seeded from the record's own fields, so
// the same input always produces the same output and values do not flicker
// across page refreshes.
package enrich

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strconv"

	"finwell/internal/core"
)

// DemoScale shrinks sandbox amounts into a plausible personal-budget range.
const DemoScale = 0.35

const (
	impulseProb = 0.08
	shockProb   = 0.02
)

var impulseCategories = []core.Category{core.Food, core.Shopping, core.Lifestyle}

// seedFor derives the per-record seed from date, receiver and amount. Any
// stable low-collision digest works here; md5 keeps seeds independent of
// record order and global state.
func seedFor(t core.Transaction) int64 {
	key := fmt.Sprintf("%s-%s-%s", t.Date, t.Receiver, strconv.FormatFloat(t.Amount, 'g', -1, 64))
	sum := md5.Sum([]byte(key))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

func varianceBand(c core.Category) (lo, hi float64) {
	switch c {
	case core.Housing:
		return 0.97, 1.03
	case core.Food:
		return 0.90, 1.12
	case core.Transport:
		return 0.92, 1.10
	default:
		return 0.88, 1.15
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Enhance applies deterministic variation to each record and probabilistically
// injects synthetic siblings (impulse purchases and rare shock expenses) dated
// the same day. Synthetic siblings precede the rescaled original record;
// grouping per source record is preserved, nothing else is ordered.
//
// Calling Enhance twice on identical input yields identical output.
func Enhance(list []core.Transaction) []core.Transaction {
	if len(list) == 0 {
		return list
	}

	enhanced := make([]core.Transaction, 0, len(list))
	for _, t := range list {
		rng := rand.New(rand.NewSource(seedFor(t)))

		lo, hi := varianceBand(t.Category)
		scaled := t.Amount * uniform(rng, lo, hi) * DemoScale

		// Keep scaled values at least one unit away from zero, preserving sign.
		if scaled > 0 {
			if scaled < 1 {
				scaled = 1
			}
		} else if scaled > -1 {
			scaled = -1
		}

		rescaled := t
		rescaled.Amount = core.Round2(scaled)

		if t.Amount > 0 && rng.Float64() < impulseProb {
			enhanced = append(enhanced, core.Transaction{
				Date:     t.Date,
				Receiver: "Impulse Purchase",
				Amount:   core.Round2(uniform(rng, 8, 40)),
				Category: impulseCategories[rng.Intn(len(impulseCategories))],
			})
		}

		if t.Amount > 0 && rng.Float64() < shockProb {
			enhanced = append(enhanced, core.Transaction{
				Date:     t.Date,
				Receiver: "Unexpected Expense",
				Amount:   core.Round2(uniform(rng, 120, 600)),
				Category: core.Lifestyle,
			})
		}

		enhanced = append(enhanced, rescaled)
	}
	return enhanced
}
