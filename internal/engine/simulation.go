package engine

import (
	"blendfolio/types"

	"github.com/schollz/progressbar/v3"
)

// The time-weighted index starts at 100 so its level reads as a percent of
// starting capital.
const twrBase = 100

// simulate runs the day-by-day compounding loop over an already aligned
// timeline and produces the four parallel curves. Weights size the
// starting dollar amount of each per-strategy curve only; there is no
// rebalancing mid-simulation, each curve compounds on its own returns.
func (e *Engine) simulate(active []*types.Strategy, timeline []types.Day) *types.SimulationResult {
	n := len(timeline)
	start := e.settings.InitialBalance

	weights := make([]float64, len(active))
	cursors := make([]*priceCursor, len(active))
	for i, s := range active {
		weights[i] = e.alloc.Weight(s.ID)
		cursors[i] = newPriceCursor(s.Series, timeline[0])
	}

	combined := make([]float64, n)
	twr := make([]float64, n)
	combined[0] = start
	twr[0] = twrBase

	equities := make([][]float64, len(active))
	for i := range active {
		equities[i] = make([]float64, n)
		alloc := start * weights[i]
		if alloc <= 0 {
			alloc = start
		}
		equities[i][0] = alloc
	}

	// The benchmark curve is the carried benchmark price scaled by a fixed
	// factor so it starts at the initial balance. Without a positive start
	// price there is no benchmark curve at all.
	var bench []float64
	var benchCursor *priceCursor
	var benchFactor float64
	if e.benchmark != nil {
		benchCursor = newPriceCursor(e.benchmark, timeline[0])
		if benchCursor.known && benchCursor.price > 0 {
			benchFactor = start / benchCursor.price
			bench = make([]float64, n)
			bench[0] = start
		}
	}

	var bar *progressbar.ProgressBar
	if e.showProgress {
		bar = initProgressBar(n - 1)
	}

	for i := 1; i < n; i++ {
		date := timeline[i]

		var weightedDayReturn float64
		for idx := range active {
			r := cursors[idx].step(date)
			weightedDayReturn += r * weights[idx]
			equities[idx][i] = equities[idx][i-1] * (1 + r)
		}

		twr[i] = twr[i-1] * (1 + weightedDayReturn)

		var injection float64
		if contributionDue(timeline[i-1], date, e.settings.ContributionFrequency) {
			injection = e.settings.ContributionAmount
		}
		combined[i] = combined[i-1]*(1+weightedDayReturn) + injection

		if bench != nil {
			benchCursor.step(date)
			bench[i] = benchCursor.price * benchFactor
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	return &types.SimulationResult{
		Dates:            timeline,
		Combined:         combined,
		TWR:              twr,
		StrategyEquities: equities,
		ActiveStrategies: active,
		Benchmark:        bench,
	}
}

func initProgressBar(steps int) *progressbar.ProgressBar {
	return progressbar.NewOptions(steps,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Simulating portfolio..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
