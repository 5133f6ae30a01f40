package types

import "sort"

// TimeSeries is an immutable set of daily equity samples, one per calendar
// day, sorted ascending. Gaps between dates are expected and meaningful:
// non-trading days and missing data carry no sample at all.
type TimeSeries struct {
	dates  []Day
	values map[Day]float64
}

// NewTimeSeries builds a series from a date->equity sample map. The input
// map is copied; the series never mutates after construction.
func NewTimeSeries(samples map[Day]float64) *TimeSeries {
	dates := make([]Day, 0, len(samples))
	values := make(map[Day]float64, len(samples))
	for d, v := range samples {
		dates = append(dates, d)
		values[d] = v
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
	return &TimeSeries{dates: dates, values: values}
}

func (s *TimeSeries) Len() int {
	return len(s.dates)
}

// Dates returns the sample dates in ascending order. Callers must not
// modify the returned slice.
func (s *TimeSeries) Dates() []Day {
	return s.dates
}

// FirstDate returns the earliest sampled date, false when the series is
// empty.
func (s *TimeSeries) FirstDate() (Day, bool) {
	if len(s.dates) == 0 {
		return "", false
	}
	return s.dates[0], true
}

// ValueAt returns the exact sample for d, if one exists.
func (s *TimeSeries) ValueAt(d Day) (float64, bool) {
	v, ok := s.values[d]
	return v, ok
}

// ValueOnOrBefore returns the most recent sample at or before d.
func (s *TimeSeries) ValueOnOrBefore(d Day) (float64, bool) {
	// First index with date > d; the sample before it is the answer.
	i := sort.Search(len(s.dates), func(i int) bool { return s.dates[i] > d })
	if i == 0 {
		return 0, false
	}
	return s.values[s.dates[i-1]], true
}

// ValueOnOrAfter returns the earliest sample at or after d.
func (s *TimeSeries) ValueOnOrAfter(d Day) (float64, bool) {
	i := sort.Search(len(s.dates), func(i int) bool { return s.dates[i] >= d })
	if i == len(s.dates) {
		return 0, false
	}
	return s.values[s.dates[i]], true
}
