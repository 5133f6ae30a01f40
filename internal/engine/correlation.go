package engine

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"blendfolio/types"
)

// Correlation computes the Pearson correlation of daily simple returns
// between two sparse series, restricted to their overlapping dates. A
// return pair is skipped when either side's prior value is not positive.
// It returns ErrInsufficientOverlap when fewer than 2 common dates or
// fewer than 2 valid return pairs remain, and 0 (not a failure) when both
// return series are constant.
func Correlation(a, b *types.TimeSeries) (float64, error) {
	common := commonDates(a, b)
	if len(common) < 2 {
		return 0, ErrInsufficientOverlap
	}

	var retA, retB []float64
	for i := 1; i < len(common); i++ {
		pa, _ := a.ValueAt(common[i-1])
		pb, _ := b.ValueAt(common[i-1])
		if pa <= 0 || pb <= 0 {
			continue
		}
		ca, _ := a.ValueAt(common[i])
		cb, _ := b.ValueAt(common[i])
		retA = append(retA, (ca-pa)/pa)
		retB = append(retB, (cb-pb)/pb)
	}
	if len(retA) < 2 {
		return 0, ErrInsufficientOverlap
	}

	n := float64(len(retA))
	var sumA, sumB, sumAsq, sumBsq, pSum float64
	for i := range retA {
		sumA += retA[i]
		sumB += retB[i]
		sumAsq += retA[i] * retA[i]
		sumBsq += retB[i] * retB[i]
		pSum += retA[i] * retB[i]
	}

	num := pSum - sumA*sumB/n
	den := math.Sqrt((sumAsq - sumA*sumA/n) * (sumBsq - sumB*sumB/n))
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}

// CorrelationMatrix builds the symmetric pairwise correlation matrix for a
// set of strategies, in input order. Pairs without enough overlap are NaN.
// The returned ids are row/column labels.
func CorrelationMatrix(strategies []*types.Strategy) (*mat.SymDense, []string) {
	n := len(strategies)
	if n == 0 {
		return nil, nil
	}
	m := mat.NewSymDense(n, nil)
	ids := make([]string, n)
	for i, s := range strategies {
		ids[i] = s.ID
		for j := i; j < n; j++ {
			c, err := Correlation(s.Series, strategies[j].Series)
			if err != nil {
				c = math.NaN()
			}
			m.SetSym(i, j, c)
		}
	}
	return m, ids
}

// commonDates is the sorted intersection of two series' date sets.
func commonDates(a, b *types.TimeSeries) []types.Day {
	var common []types.Day
	for _, d := range a.Dates() {
		if _, ok := b.ValueAt(d); ok {
			common = append(common, d)
		}
	}
	return common
}
