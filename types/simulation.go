package types

// SimulationResult holds the curves produced by one simulation run. All
// curves are positionally aligned to Dates. Benchmark, BenchmarkDrawdown
// and BenchmarkStats are nil when no usable benchmark was supplied.
type SimulationResult struct {
	Dates []Day

	// Combined is the dollar equity of the blended portfolio, including
	// scheduled contributions. TWR is the time-weighted return index
	// (base 100), driven purely by returns with no cash-flow distortion.
	Combined []float64
	TWR      []float64

	// StrategyEquities is parallel to ActiveStrategies. Each curve starts
	// at weight x initial balance and compounds on its own returns;
	// weights size the starting dollars only, there is no rebalancing.
	StrategyEquities [][]float64
	ActiveStrategies []*Strategy

	Benchmark []float64

	CombinedDrawdown  []float64
	BenchmarkDrawdown []float64

	Stats          PortfolioStats
	BenchmarkStats *PortfolioStats
}
