package core

// categoryMap translates the aggregator's primary personal-finance category
// labels into UI categories. Labels outside this table are rejected.
var categoryMap = map[string]Category{
	"FOOD_AND_DRINK":      Food,
	"TRANSPORTATION":      Transport,
	"TRAVEL":              Transport,
	"GENERAL_MERCHANDISE": Shopping,
	"GENERAL_SERVICES":    Shopping,
	"LOAN_PAYMENTS":       Housing,
	"RENT_AND_UTILITIES":  Housing,
	"TRANSFER_OUT":        Housing,
	"PERSONAL_CARE":       Lifestyle,
	"ENTERTAINMENT":       Lifestyle,
}

// NormalizeCategory maps a raw provider label to a UI category. The second
// return is false when the label is unknown or maps outside the allow-list,
// in which case the transaction must be dropped.
func NormalizeCategory(providerLabel string) (Category, bool) {
	c, ok := categoryMap[providerLabel]
	if !ok || !c.Valid() {
		return "", false
	}
	return c, true
}

// CleanTransactions normalizes raw aggregator records into pipeline
// transactions. Records whose category fails normalization are discarded.
// The amount sign is preserved and rounded to two decimals; the merchant
// display name is preferred over the raw transaction name.
func CleanTransactions(raw []RawTransaction) []Transaction {
	cleaned := make([]Transaction, 0, len(raw))
	for _, r := range raw {
		category, ok := NormalizeCategory(r.CategoryPrimary)
		if !ok {
			continue
		}
		receiver := r.Merchant
		if receiver == "" {
			receiver = r.Name
		}
		cleaned = append(cleaned, Transaction{
			Date:     r.Date,
			Receiver: receiver,
			Amount:   Round2(r.Amount),
			Category: category,
		})
	}
	return cleaned
}
