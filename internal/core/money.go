// Package core holds the transaction domain model shared by every pipeline
// stage, plus the rounding helpers that enforce the two-decimal storage
// convention.
package core

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to two decimal places, the storage
// convention for every amount in the pipeline.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Round1 rounds to one decimal place (used for percentage figures such as
// savings rate and inflation).
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
