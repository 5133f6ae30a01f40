package types

import "github.com/shopspring/decimal"

// Strategy is one tradeable strategy with its historical equity curve.
// Price and InfoURL are commercial metadata carried for presentation
// layers; the simulation never reads them.
type Strategy struct {
	ID      string
	Name    string
	Color   string
	Series  *TimeSeries
	BuiltIn bool
	Price   decimal.Decimal
	InfoURL string
}

// Allocation maps strategy id to a weight in percent of deployed capital,
// in [0,100]. Weights are independent and are not required to sum to 100.
type Allocation map[string]float64

// Weight returns the allocation for id as a fraction of 1.
func (a Allocation) Weight(id string) float64 {
	return a[id] / 100
}

// Total returns the sum of all allocated percentages.
func (a Allocation) Total() float64 {
	var sum float64
	for _, w := range a {
		sum += w
	}
	return sum
}
