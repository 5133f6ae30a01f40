package engine

import (
	"errors"
	"testing"

	"blendfolio/types"
)

func newStrategy(id string, samples map[types.Day]float64) *types.Strategy {
	return &types.Strategy{ID: id, Name: id, Series: types.NewTimeSeries(samples)}
}

func TestAlignTimeline(t *testing.T) {
	a := newStrategy("a", map[types.Day]float64{
		"2020-01-01": 100,
		"2020-01-03": 101,
	})
	b := newStrategy("b", map[types.Day]float64{
		"2020-01-02": 50,
		"2020-01-04": 51,
	})
	bench := types.NewTimeSeries(map[types.Day]float64{
		"2019-12-31": 300,
		"2020-01-05": 310,
	})

	got, err := alignTimeline([]*types.Strategy{a, b}, bench)
	if err != nil {
		t.Fatalf("alignTimeline() error = %v", err)
	}

	// The latest starter (b, 2020-01-02) constrains the window; dates from
	// every participant on or after it survive, sorted.
	want := []types.Day{"2020-01-02", "2020-01-03", "2020-01-04", "2020-01-05"}
	if len(got) != len(want) {
		t.Fatalf("alignTimeline() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("alignTimeline()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAlignTimelineErrors(t *testing.T) {
	tests := []struct {
		name    string
		active  []*types.Strategy
		bench   *types.TimeSeries
		wantErr error
	}{
		{"no active strategies", nil, nil, ErrNoActiveStrategies},
		{
			"single date left",
			[]*types.Strategy{newStrategy("a", map[types.Day]float64{"2020-01-01": 100})},
			nil,
			ErrShortTimeline,
		},
		{
			"late starter eats the whole window",
			[]*types.Strategy{
				newStrategy("a", map[types.Day]float64{"2020-01-01": 100, "2020-01-02": 101}),
				newStrategy("b", map[types.Day]float64{"2020-06-01": 50}),
			},
			nil,
			ErrShortTimeline,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := alignTimeline(tt.active, tt.bench)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("alignTimeline() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlignTimelineIgnoresBenchmarkForStart(t *testing.T) {
	// Benchmark dates join the union but never move the global start.
	a := newStrategy("a", map[types.Day]float64{
		"2020-01-02": 100,
		"2020-01-03": 101,
	})
	bench := types.NewTimeSeries(map[types.Day]float64{
		"2010-01-01": 10,
		"2020-01-04": 20,
	})
	got, err := alignTimeline([]*types.Strategy{a}, bench)
	if err != nil {
		t.Fatalf("alignTimeline() error = %v", err)
	}
	if got[0] != "2020-01-02" {
		t.Errorf("timeline starts at %s, want 2020-01-02", got[0])
	}
	if got[len(got)-1] != "2020-01-04" {
		t.Errorf("timeline ends at %s, want 2020-01-04", got[len(got)-1])
	}
}
