package engine

import "blendfolio/types"

// priceCursor walks a sparse series along the master timeline, carrying
// the last resolved price across gaps. A date without a sample reads as a
// 0 daily return against the carried price, never as a price change.
//
// A series with no usable sample at all stays in the no-data state and
// reports 0 returns for the whole run, leaving its curve flat.
type priceCursor struct {
	series *types.TimeSeries
	price  float64
	known  bool
}

// newPriceCursor establishes the basis price at the first master date: the
// exact sample when present, otherwise the most recent prior sample,
// otherwise the first sample at or after it.
func newPriceCursor(series *types.TimeSeries, first types.Day) *priceCursor {
	c := &priceCursor{series: series}
	if series == nil {
		return c
	}
	if v, ok := series.ValueOnOrBefore(first); ok {
		c.price, c.known = v, true
	} else if v, ok := series.ValueOnOrAfter(first); ok {
		c.price, c.known = v, true
	}
	return c
}

// step advances the cursor to the given master date and returns the daily
// simple return against the carried price. The return is 0 when the series
// has no data yet or the carried price is not positive.
func (c *priceCursor) step(d types.Day) float64 {
	prev := c.price
	hadPrice := c.known
	if v, ok := c.series.ValueAt(d); ok {
		c.price, c.known = v, true
	}
	if !hadPrice || prev <= 0 {
		return 0
	}
	return (c.price - prev) / prev
}
