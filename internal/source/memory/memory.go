// Package memory is an in-process stand-in for the aggregator so the server
// runs end to end without Plaid credentials. The dataset is generated from a
// fixed seed, so restarts serve the same demo transactions.
package memory

import (
	"context"
	"math/rand"
	"time"

	"finwell/internal/core"
	"finwell/internal/source"
)

const demoSeed = 42

// Store serves a fixed synthetic raw-transaction dataset and fakes the two
// token calls.
type Store struct {
	raw []core.RawTransaction
}

// Ensure interface conformance
var (
	_ source.TransactionSource = (*Store)(nil)
	_ source.LinkTokenCreator  = (*Store)(nil)
	_ source.TokenExchanger    = (*Store)(nil)
)

// merchant templates: name, provider category, base amount, day-of-month
var demoMerchants = []struct {
	name     string
	category string
	amount   float64
	day      int
}{
	{"Oakwood Apartments", "RENT_AND_UTILITIES", 1450.00, 1},
	{"City Light & Power", "RENT_AND_UTILITIES", 110.00, 5},
	{"Fresh Mart", "FOOD_AND_DRINK", 92.40, 3},
	{"Fresh Mart", "FOOD_AND_DRINK", 78.15, 12},
	{"Corner Deli", "FOOD_AND_DRINK", 23.60, 9},
	{"Metro Transit", "TRANSPORTATION", 48.00, 2},
	{"Ride Along", "TRANSPORTATION", 17.35, 16},
	{"Maxi Store", "GENERAL_MERCHANDISE", 134.20, 14},
	{"Click Shop", "GENERAL_MERCHANDISE", 61.99, 21},
	{"Gym One", "PERSONAL_CARE", 39.00, 6},
	{"Stream Plus", "ENTERTAINMENT", 15.99, 8},
	{"Cinema City", "ENTERTAINMENT", 28.50, 19},
	{"Acme Payroll", "INCOME", -2600.00, 25}, // dropped by normalization, kept for realism
}

// New builds the demo dataset covering the last three full months plus the
// current one.
func New() *Store {
	rng := rand.New(rand.NewSource(demoSeed))
	now := time.Now()

	var raw []core.RawTransaction
	for back := 3; back >= 0; back-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)
		for _, m := range demoMerchants {
			day := time.Date(month.Year(), month.Month(), m.day, 0, 0, 0, 0, time.UTC)
			if day.After(now) {
				continue
			}
			// small month-to-month wobble so the trend is not flat
			amount := m.amount * (0.95 + rng.Float64()*0.1)
			raw = append(raw, core.RawTransaction{
				Date:            day.Format("2006-01-02"),
				Merchant:        m.name,
				Name:            m.name,
				Amount:          core.Round2(amount),
				CategoryPrimary: m.category,
			})
		}
	}
	return &Store{raw: raw}
}

// Transactions returns the demo records inside the requested window. The
// access token is ignored.
func (s *Store) Transactions(_ context.Context, _ string, start, end time.Time) ([]core.RawTransaction, error) {
	lo := start.Format("2006-01-02")
	hi := end.Format("2006-01-02")

	out := make([]core.RawTransaction, 0, len(s.raw))
	for _, r := range s.raw {
		if r.Date >= lo && r.Date <= hi {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateLinkToken returns a fake bootstrap token.
func (s *Store) CreateLinkToken(context.Context) (string, error) {
	return "link-demo-token", nil
}

// ExchangePublicToken accepts any public token and returns a fake credential.
func (s *Store) ExchangePublicToken(_ context.Context, _ string) (string, error) {
	return "access-demo-token", nil
}
