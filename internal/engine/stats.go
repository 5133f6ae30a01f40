package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"blendfolio/types"
)

// Annualization falls back to this sample count when the curve duration is
// degenerate.
const defaultSamplesPerYear = 252

// CAGR duration is floored at this many years to keep near-zero windows
// from exploding the exponent.
const minYears = 0.1

// CalculateStats derives the standard metric set from one equity curve and
// its date axis. Curves shorter than 2 points yield zeroed stats with
// empty (non-nil) maps. The function is pure and allocates its output
// fresh on every call.
func CalculateStats(curve []float64, dates []types.Day) types.PortfolioStats {
	stats := types.PortfolioStats{
		AnnualReturns:      map[int]float64{},
		MonthlyReturns:     map[int]map[int]float64{},
		AnnualMaxDrawdowns: map[int]float64{},
	}
	if len(curve) < 2 || len(dates) != len(curve) {
		return stats
	}

	returns := dailyReturns(curve)

	// Monthly and annual returns compound geometrically within the group,
	// keyed by the return's own date (index i), not the prior date.
	monthGrowth := map[int]map[int]float64{}
	yearGrowth := map[int]float64{}
	for i := 1; i < len(curve); i++ {
		r := returns[i-1]
		y, m := dates[i].Year(), dates[i].MonthIndex()
		if monthGrowth[y] == nil {
			monthGrowth[y] = map[int]float64{}
		}
		if _, ok := monthGrowth[y][m]; !ok {
			monthGrowth[y][m] = 1
		}
		monthGrowth[y][m] *= 1 + r
		if _, ok := yearGrowth[y]; !ok {
			yearGrowth[y] = 1
		}
		yearGrowth[y] *= 1 + r
	}
	for y, months := range monthGrowth {
		stats.MonthlyReturns[y] = map[int]float64{}
		for m, g := range months {
			stats.MonthlyReturns[y][m] = g - 1
		}
	}
	for y, g := range yearGrowth {
		stats.AnnualReturns[y] = g - 1
	}

	// Annual max drawdown restarts the running peak at every calendar
	// year boundary, unlike the whole-curve and stress-window variants.
	yearPeak := map[int]float64{}
	for i, d := range dates {
		y := d.Year()
		v := curve[i]
		peak, seen := yearPeak[y]
		if !seen || v > peak {
			peak = v
		}
		yearPeak[y] = peak
		if !seen {
			stats.AnnualMaxDrawdowns[y] = 0
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > stats.AnnualMaxDrawdowns[y] {
				stats.AnnualMaxDrawdowns[y] = dd
			}
		}
	}

	first, last := curve[0], curve[len(curve)-1]
	years := curveYears(dates)
	if first > 0 {
		stats.CAGR = math.Pow(last/first, 1/years) - 1
		stats.TotalReturn = (last - first) / first
	}
	stats.FinalBalance = last
	stats.MaxDrawdown = maxDrawdown(curve)

	mean := stat.Mean(returns, nil)
	sd := populationStdDev(returns, mean)
	downside := downsideDeviation(returns)

	// The annualization factor self-calibrates to the observed sampling
	// density instead of assuming 252 trading days, so mixed calendars
	// (stocks and crypto) annualize correctly.
	samplesPerYear := float64(len(returns)) / years
	factor := math.Sqrt(defaultSamplesPerYear)
	if samplesPerYear > 0 {
		factor = math.Sqrt(samplesPerYear)
	}
	if sd > 0 {
		stats.Sharpe = mean / sd * factor
	}
	if downside > 0 {
		stats.Sortino = mean / downside * factor
	}
	if stats.MaxDrawdown > 0 {
		stats.Calmar = stats.CAGR / stats.MaxDrawdown
	}

	if len(stats.AnnualReturns) > 0 {
		best, worst := math.Inf(-1), math.Inf(1)
		for _, r := range stats.AnnualReturns {
			best = math.Max(best, r)
			worst = math.Min(worst, r)
		}
		stats.BestYear, stats.WorstYear = best, worst
	}

	stats.WinRate, stats.MaxWinStreak, stats.MaxLossStreak = streaks(returns)
	return stats
}

// dailyReturns computes simple returns, substituting 0 when the prior
// value is not positive.
func dailyReturns(curve []float64) []float64 {
	returns := make([]float64, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		if prev := curve[i-1]; prev > 0 {
			returns[i-1] = (curve[i] - prev) / prev
		}
	}
	return returns
}

// curveYears measures the curve duration in years (365.25-day years),
// floored at minYears.
func curveYears(dates []types.Day) float64 {
	years := minYears
	firstT, okFirst := dates[0].Time()
	lastT, okLast := dates[len(dates)-1].Time()
	if okFirst && okLast {
		days := math.Abs(lastT.Sub(firstT).Hours() / 24)
		if y := days / 365.25; y > years {
			years = y
		}
	}
	return years
}

// maxDrawdown is the running-peak method over the whole curve, reported as
// a positive fraction.
func maxDrawdown(curve []float64) float64 {
	peak := math.Inf(-1)
	var maxDD float64
	for _, v := range curve {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// drawdownSeries is the per-date running-peak drawdown, positive
// fractions, 0 whenever the curve sets a new peak.
func drawdownSeries(curve []float64) []float64 {
	out := make([]float64, len(curve))
	peak := math.Inf(-1)
	for i, v := range curve {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			out[i] = (peak - v) / peak
		}
	}
	return out
}

func populationStdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// downsideDeviation is the root mean square of the negative returns only,
// taken about zero. Returns 0 when there are no negative returns.
func downsideDeviation(returns []float64) float64 {
	var ss float64
	var n int
	for _, r := range returns {
		if r < 0 {
			ss += r * r
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(ss / float64(n))
}

// streaks counts win rate and the longest win/loss runs. A return of
// exactly 0 neither extends nor resets a streak, and counts as neither win
// nor loss.
func streaks(returns []float64) (winRate float64, maxWin, maxLoss int) {
	var wins, curWin, curLoss int
	for _, r := range returns {
		switch {
		case r > 0:
			wins++
			curWin++
			curLoss = 0
			if curWin > maxWin {
				maxWin = curWin
			}
		case r < 0:
			curLoss++
			curWin = 0
			if curLoss > maxLoss {
				maxLoss = curLoss
			}
		}
	}
	if len(returns) > 0 {
		winRate = float64(wins) / float64(len(returns))
	}
	return winRate, maxWin, maxLoss
}
