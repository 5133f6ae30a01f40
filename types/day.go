package types

import "time"

const dayLayout = "2006-01-02"

// Day is a calendar date in YYYY-MM-DD form, day granularity only.
// Lexicographic ordering of Days equals chronological ordering, which the
// timeline alignment and stress-window selection rely on.
type Day string

func DayFromTime(t time.Time) Day {
	return Day(t.Format(dayLayout))
}

// Time parses the day into a UTC midnight timestamp. The second return is
// false for a malformed day.
func (d Day) Time() (time.Time, bool) {
	t, err := time.Parse(dayLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Year returns the calendar year, or 0 for a malformed day.
func (d Day) Year() int {
	t, ok := d.Time()
	if !ok {
		return 0
	}
	return t.Year()
}

// MonthIndex returns the 0-indexed month (January = 0), or -1 for a
// malformed day.
func (d Day) MonthIndex() int {
	t, ok := d.Time()
	if !ok {
		return -1
	}
	return int(t.Month()) - 1
}
