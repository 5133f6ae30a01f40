package engine

import (
	"math"

	"blendfolio/types"
)

// DefaultStressWindows are the fixed historical crisis windows reported
// when no custom windows are configured.
var DefaultStressWindows = []types.StressWindow{
	{Name: "Dotcom Bubble", Start: "2000-01-01", End: "2002-10-08"},
	{Name: "2008 Financial Crisis", Start: "2007-10-10", End: "2009-03-06"},
	{Name: "Covid-19 Crash", Start: "2020-02-19", End: "2020-03-23"},
	{Name: "2022 Bear Market", Start: "2022-01-04", End: "2022-10-12"},
	{Name: "2025 Tariffs Crash", Start: "2025-02-19", End: "2025-04-07"},
}

// MaxDrawdownInWindow runs the running-peak drawdown over the curve points
// whose dates fall inside the closed [start, end] interval. The peak is
// local to the window, not the global running peak: a crash that begins
// mid-decline measures only the in-window decline. Returns
// ErrWindowTooSparse when fewer than 2 samples fall inside the window; a
// window entirely outside the curve is undefined, never zero.
func MaxDrawdownInWindow(curve []float64, dates []types.Day, start, end types.Day) (float64, error) {
	peak := math.Inf(-1)
	var maxDD float64
	var count int
	for i, d := range dates {
		if i >= len(curve) {
			break
		}
		if d < start || d > end {
			continue
		}
		count++
		v := curve[i]
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	if count < 2 {
		return 0, ErrWindowTooSparse
	}
	return maxDD, nil
}

// AnalyzeStressWindows evaluates each window against the combined dollar
// curve and, when present, the benchmark curve. Windows default to
// DefaultStressWindows.
func AnalyzeStressWindows(res *types.SimulationResult, windows []types.StressWindow) []types.StressReport {
	if len(windows) == 0 {
		windows = DefaultStressWindows
	}
	reports := make([]types.StressReport, 0, len(windows))
	for _, w := range windows {
		rep := types.StressReport{Window: w}
		if dd, err := MaxDrawdownInWindow(res.Combined, res.Dates, w.Start, w.End); err == nil {
			v := dd
			rep.Portfolio = &v
		}
		if res.Benchmark != nil {
			if dd, err := MaxDrawdownInWindow(res.Benchmark, res.Dates, w.Start, w.End); err == nil {
				v := dd
				rep.Benchmark = &v
			}
		}
		reports = append(reports, rep)
	}
	return reports
}
