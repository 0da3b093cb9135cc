package core

import "testing"

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		label string
		want  Category
		ok    bool
	}{
		{"FOOD_AND_DRINK", Food, true},
		{"TRANSPORTATION", Transport, true},
		{"TRAVEL", Transport, true},
		{"GENERAL_MERCHANDISE", Shopping, true},
		{"GENERAL_SERVICES", Shopping, true},
		{"LOAN_PAYMENTS", Housing, true},
		{"RENT_AND_UTILITIES", Housing, true},
		{"TRANSFER_OUT", Housing, true},
		{"PERSONAL_CARE", Lifestyle, true},
		{"ENTERTAINMENT", Lifestyle, true},
		{"INCOME", "", false},
		{"MEDICAL", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeCategory(tc.label)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("NormalizeCategory(%q) = (%q, %v), want (%q, %v)", tc.label, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCleanTransactions(t *testing.T) {
	raw := []RawTransaction{
		{Date: "2025-06-01", Merchant: "Fresh Mart", Name: "FRESH MART #12", Amount: 42.5, CategoryPrimary: "FOOD_AND_DRINK"},
		{Date: "2025-06-02", Merchant: "", Name: "CITY TRANSIT", Amount: 12.25, CategoryPrimary: "TRANSPORTATION"},
		{Date: "2025-06-03", Merchant: "Hospital", Name: "HOSPITAL", Amount: 300, CategoryPrimary: "MEDICAL"},
		{Date: "2025-06-25", Merchant: "Acme Payroll", Name: "ACME", Amount: -2600, CategoryPrimary: "RENT_AND_UTILITIES"},
	}

	cleaned := CleanTransactions(raw)
	if len(cleaned) != 3 {
		t.Fatalf("expected 3 cleaned records, got %d", len(cleaned))
	}

	if cleaned[0].Receiver != "Fresh Mart" {
		t.Errorf("expected merchant name preferred, got %q", cleaned[0].Receiver)
	}
	if cleaned[1].Receiver != "CITY TRANSIT" {
		t.Errorf("expected raw name fallback, got %q", cleaned[1].Receiver)
	}
	if cleaned[2].Amount != -2600 {
		t.Errorf("expected income sign preserved, got %v", cleaned[2].Amount)
	}
	for i, c := range cleaned {
		if !c.Category.Valid() {
			t.Errorf("record %d has invalid category %q", i, c.Category)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range AllowedCategories {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Category("Medical").Valid() {
		t.Errorf("Medical should not be valid")
	}
}
