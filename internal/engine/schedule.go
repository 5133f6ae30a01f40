package engine

import "blendfolio/types"

// contributionDue reports whether a scheduled cash flow fires on the step
// from prev to cur. A flow fires at most once per month, and only on an
// observed month transition between consecutive simulated dates: when the
// merged timeline skips an entire boundary month, that month's flow is
// skipped with it. The cadence then filters which transitions qualify,
// using 0-indexed months (quarterly: Jan/Apr/Jul/Oct, semi-annual:
// Jan/Jul, annual: Jan).
func contributionDue(prev, cur types.Day, freq types.Frequency) bool {
	pm, cm := prev.MonthIndex(), cur.MonthIndex()
	if pm < 0 || cm < 0 || pm == cm {
		return false
	}
	switch freq {
	case types.Monthly:
		return true
	case types.Quarterly:
		return cm%3 == 0
	case types.SemiAnnually:
		return cm%6 == 0
	case types.Annually:
		return cm == 0
	}
	return false
}
