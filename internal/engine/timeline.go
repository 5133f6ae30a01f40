package engine

import (
	"blendfolio/types"
	"errors"
	"sort"
)

// Global error declarations.
var (
	ErrNoActiveStrategies   = errors.New("no strategy with a positive weight")
	ErrShortTimeline        = errors.New("aligned timeline has fewer than 2 dates")
	ErrInsufficientOverlap  = errors.New("fewer than 2 overlapping dates or valid return pairs")
	ErrWindowTooSparse      = errors.New("fewer than 2 samples inside window")
)

// alignTimeline builds the master simulation timeline: the union of all
// sample dates across the active strategies and the benchmark, kept sorted
// and restricted to dates on or after the latest first-sample date among
// the active strategies. The latest starter constrains the whole window,
// since a strategy cannot contribute returns before it has data.
func alignTimeline(active []*types.Strategy, benchmark *types.TimeSeries) ([]types.Day, error) {
	if len(active) == 0 {
		return nil, ErrNoActiveStrategies
	}

	var globalStart types.Day
	seen := make(map[types.Day]struct{})
	for _, s := range active {
		first, ok := s.Series.FirstDate()
		if !ok {
			continue
		}
		if first > globalStart {
			globalStart = first
		}
		for _, d := range s.Series.Dates() {
			seen[d] = struct{}{}
		}
	}
	if benchmark != nil {
		for _, d := range benchmark.Dates() {
			seen[d] = struct{}{}
		}
	}

	timeline := make([]types.Day, 0, len(seen))
	for d := range seen {
		if d >= globalStart {
			timeline = append(timeline, d)
		}
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i] < timeline[j] })

	if len(timeline) < 2 {
		return nil, ErrShortTimeline
	}
	return timeline, nil
}
