package engine

import (
	"testing"

	"blendfolio/types"
)

func TestPriceCursor(t *testing.T) {
	series := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-04": 100,
		"2021-01-06": 110,
	})

	c := newPriceCursor(series, "2021-01-05")
	if !c.known || c.price != 100 {
		t.Fatalf("basis price = (%v, %v), want (100, true)", c.price, c.known)
	}

	// Missing date: carried price, 0 return.
	if r := c.step("2021-01-05"); r != 0 {
		t.Errorf("gap return = %v, want 0", r)
	}
	// Present date: return against the carried price.
	if r := c.step("2021-01-06"); r != 0.1 {
		t.Errorf("return = %v, want 0.1", r)
	}
	// Past the last sample: flat again.
	if r := c.step("2021-01-07"); r != 0 {
		t.Errorf("trailing return = %v, want 0", r)
	}
}

func TestPriceCursorFallsForwardAtStart(t *testing.T) {
	series := types.NewTimeSeries(map[types.Day]float64{
		"2021-01-08": 200,
	})
	c := newPriceCursor(series, "2021-01-04")
	if !c.known || c.price != 200 {
		t.Fatalf("basis price = (%v, %v), want (200, true)", c.price, c.known)
	}
	// The carried future price produces flat returns up to and through
	// its own date.
	for _, d := range []types.Day{"2021-01-05", "2021-01-08", "2021-01-11"} {
		if r := c.step(d); r != 0 {
			t.Errorf("step(%s) = %v, want 0", d, r)
		}
	}
}

func TestPriceCursorNoData(t *testing.T) {
	c := newPriceCursor(types.NewTimeSeries(nil), "2021-01-04")
	if c.known {
		t.Fatal("empty series should have no basis price")
	}
	if r := c.step("2021-01-05"); r != 0 {
		t.Errorf("no-data return = %v, want 0", r)
	}
}
