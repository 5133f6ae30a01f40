package types

// PortfolioStats is the standard metric set derived from one equity curve.
// Drawdowns are positive fractions (0.25 means a 25% decline from peak).
type PortfolioStats struct {
	CAGR        float64
	Sharpe      float64
	Sortino     float64
	MaxDrawdown float64
	Calmar      float64

	TotalReturn  float64
	FinalBalance float64
	BestYear     float64
	WorstYear    float64

	WinRate       float64
	MaxWinStreak  int
	MaxLossStreak int

	// AnnualReturns is keyed by calendar year; MonthlyReturns by year then
	// 0-indexed month; AnnualMaxDrawdowns by year, with the running peak
	// reset at each year boundary.
	AnnualReturns      map[int]float64
	MonthlyReturns     map[int]map[int]float64
	AnnualMaxDrawdowns map[int]float64
}
