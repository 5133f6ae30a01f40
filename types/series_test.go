package types

import "testing"

func testSeries() *TimeSeries {
	return NewTimeSeries(map[Day]float64{
		"2021-01-08": 103,
		"2021-01-04": 100,
		"2021-01-06": 98,
	})
}

func TestTimeSeriesSorted(t *testing.T) {
	s := testSeries()
	want := []Day{"2021-01-04", "2021-01-06", "2021-01-08"}
	got := s.Dates()
	if len(got) != len(want) {
		t.Fatalf("Dates() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dates()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if first, ok := s.FirstDate(); !ok || first != "2021-01-04" {
		t.Errorf("FirstDate() = (%s, %v), want (2021-01-04, true)", first, ok)
	}
}

func TestTimeSeriesLookups(t *testing.T) {
	s := testSeries()
	tests := []struct {
		name   string
		lookup func(Day) (float64, bool)
		day    Day
		want   float64
		wantOK bool
	}{
		{"exact hit", s.ValueAt, "2021-01-06", 98, true},
		{"exact miss", s.ValueAt, "2021-01-05", 0, false},
		{"on-or-before exact", s.ValueOnOrBefore, "2021-01-06", 98, true},
		{"on-or-before gap", s.ValueOnOrBefore, "2021-01-07", 98, true},
		{"on-or-before past end", s.ValueOnOrBefore, "2021-02-01", 103, true},
		{"on-or-before too early", s.ValueOnOrBefore, "2021-01-03", 0, false},
		{"on-or-after exact", s.ValueOnOrAfter, "2021-01-08", 103, true},
		{"on-or-after gap", s.ValueOnOrAfter, "2021-01-05", 98, true},
		{"on-or-after before start", s.ValueOnOrAfter, "2020-12-01", 100, true},
		{"on-or-after past end", s.ValueOnOrAfter, "2021-02-01", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup(tt.day)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("lookup(%s) = (%v, %v), want (%v, %v)", tt.day, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTimeSeriesCopiesInput(t *testing.T) {
	samples := map[Day]float64{"2021-01-04": 100}
	s := NewTimeSeries(samples)
	samples["2021-01-04"] = 999
	if v, _ := s.ValueAt("2021-01-04"); v != 100 {
		t.Errorf("ValueAt = %v, want 100 (series must copy its input)", v)
	}
}

func TestEmptyTimeSeries(t *testing.T) {
	s := NewTimeSeries(nil)
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.FirstDate(); ok {
		t.Error("FirstDate() ok = true, want false for empty series")
	}
	if _, ok := s.ValueOnOrBefore("2021-01-04"); ok {
		t.Error("ValueOnOrBefore ok = true, want false for empty series")
	}
}
