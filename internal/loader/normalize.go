package loader

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"blendfolio/types"
)

var (
	isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	mdyPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`)
	dmyPattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
)

// Fallback layouts for exports that spell dates some other way.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// NormalizeDate coerces the date spellings found in strategy equity
// exports into a canonical Day: YYYY-MM-DD, M/D/YYYY, M/D/YY (2-digit
// years pivot at 50, mapping to 1950-2049), D.M.YYYY, or one of a few
// permissive fallback layouts. Returns false for anything unparseable.
func NormalizeDate(raw string) (types.Day, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if isoPattern.MatchString(s) {
		return types.Day(s), true
	}

	if m := mdyPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := m[3]
		if len(year) == 2 {
			n, _ := strconv.Atoi(year)
			if n < 50 {
				year = "20" + year
			} else {
				year = "19" + year
			}
		}
		return types.Day(fmt.Sprintf("%s-%02d-%02d", year, month, day)), true
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return types.Day(fmt.Sprintf("%s-%02d-%02d", m[3], month, day)), true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return types.DayFromTime(t), true
		}
	}
	return "", false
}

// ParseNumber parses an equity value, tolerating currency symbols and
// thousands separators. Non-finite values are rejected.
func ParseNumber(raw string) (float64, bool) {
	s := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
