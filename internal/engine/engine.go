package engine

import "blendfolio/types"

// Engine runs blended-portfolio simulations. It is a pure function of its
// inputs: every Run recomputes all curves and statistics from scratch, and
// identical inputs yield bit-identical outputs.
type Engine struct {
	strategies   []*types.Strategy
	benchmark    *types.TimeSeries
	alloc        types.Allocation
	settings     types.Settings
	showProgress bool
}

type Option func(*Engine)

// WithProgress renders a progress bar while the daily loop runs. Meant for
// interactive CLI runs only.
func WithProgress() Option {
	return func(e *Engine) { e.showProgress = true }
}

func New(strategies []*types.Strategy, benchmark *types.TimeSeries, alloc types.Allocation, settings types.Settings, opts ...Option) *Engine {
	e := &Engine{
		strategies: strategies,
		benchmark:  benchmark,
		alloc:      alloc,
		settings:   settings,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run aligns the timelines, simulates the blend, and derives statistics
// for both the portfolio and the benchmark. It returns
// ErrNoActiveStrategies when no strategy has a positive weight and
// ErrShortTimeline when fewer than 2 aligned dates remain; no partial
// result is ever returned.
func (e *Engine) Run() (*types.SimulationResult, error) {
	active := e.activeStrategies()
	if len(active) == 0 {
		return nil, ErrNoActiveStrategies
	}

	timeline, err := alignTimeline(active, e.benchmark)
	if err != nil {
		return nil, err
	}

	res := e.simulate(active, timeline)

	// Risk/return metrics come from the time-weighted index so scheduled
	// contributions cannot masquerade as performance; the dollar outcome
	// fields are taken from the combined curve.
	last := len(res.Combined) - 1
	res.Stats = CalculateStats(res.TWR, res.Dates)
	res.Stats.FinalBalance = res.Combined[last]
	if e.settings.InitialBalance > 0 {
		res.Stats.TotalReturn = (res.Combined[last] - e.settings.InitialBalance) / e.settings.InitialBalance
	}

	res.CombinedDrawdown = drawdownSeries(res.Combined)
	if res.Benchmark != nil {
		bs := CalculateStats(res.Benchmark, res.Dates)
		res.BenchmarkStats = &bs
		res.BenchmarkDrawdown = drawdownSeries(res.Benchmark)
	}
	return res, nil
}

// activeStrategies filters to weight > 0, preserving input order.
func (e *Engine) activeStrategies() []*types.Strategy {
	var active []*types.Strategy
	for _, s := range e.strategies {
		if e.alloc.Weight(s.ID) > 0 {
			active = append(active, s)
		}
	}
	return active
}
