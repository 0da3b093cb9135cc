package core

const (
	Housing   Category = "Housing"
	Food      Category = "Food"
	Transport Category = "Transport"
	Shopping  Category = "Shopping"
	Lifestyle Category = "Lifestyle"
)

type (
	// Category is one of the fixed UI spending categories.
	Category string

	// Transaction is a single cleaned bank movement. Positive amounts are
	// expenses (outflows), negative amounts are income (inflows). The date
	// carries no time component.
	Transaction struct {
		Date     string   `json:"date"`
		Receiver string   `json:"receiver"`
		Amount   float64  `json:"amount"`
		Category Category `json:"category"`
	}

	// RawTransaction is the aggregator-shaped record before normalization.
	RawTransaction struct {
		Date            string
		Merchant        string
		Name            string
		Amount          float64
		CategoryPrimary string
	}
)

// AllowedCategories is the closed set of UI categories. Records that do not
// normalize into this set never enter the pipeline.
var AllowedCategories = []Category{Housing, Food, Transport, Shopping, Lifestyle}

// Valid reports whether c is a member of the UI category set.
func (c Category) Valid() bool {
	switch c {
	case Housing, Food, Transport, Shopping, Lifestyle:
		return true
	}
	return false
}
