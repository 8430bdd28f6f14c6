package finreport

import "slices"

// TopDeficitCount is how many ranked deficits the summary report shows.
const TopDeficitCount = 3

// Extremes holds the notable points of a delta series.
type Extremes struct {
	HighestIncrease DeltaRecord
	HighestDecrease DeltaRecord
	// Deficits are all negative deltas, in day order.
	Deficits []DeltaRecord
	// TopDeficits are up to TopDeficitCount deficits, most severe first.
	TopDeficits []DeltaRecord
}

// FindExtremes scans a delta series for its highest increase, highest
// decrease and worst deficits.
//
// Both extremes start from a zero sentinel on day 0: when no delta
// beats the sentinel (an all-negative series has no real increase) the
// sentinel itself is reported. A delta that updates the increase is not
// also tested as a decrease candidate in the same step. Both rules are
// kept from the historical report format, which readers depend on.
//
// Ranking the deficits is stable: equal amounts keep their day order.
func FindExtremes(deltas []DeltaRecord) Extremes {
	var x Extremes
	for _, d := range deltas {
		if d.Delta.GreaterThan(x.HighestIncrease.Delta) {
			x.HighestIncrease = d
		} else if d.Delta.LessThan(x.HighestDecrease.Delta) {
			x.HighestDecrease = d
		}
		if d.Delta.IsNegative() {
			x.Deficits = append(x.Deficits, d)
		}
	}

	ranked := slices.Clone(x.Deficits)
	slices.SortStableFunc(ranked, func(a, b DeltaRecord) int {
		return a.Delta.Cmp(b.Delta)
	})
	if len(ranked) > TopDeficitCount {
		ranked = ranked[:TopDeficitCount]
	}
	x.TopDeficits = ranked
	return x
}

// Consistent reports whether a delta series never goes negative. The
// summary report uses it to pick between the surplus and the deficit
// rendition of a section; it is always recomputed from the full series.
func Consistent(deltas []DeltaRecord) bool {
	for _, d := range deltas {
		if d.Delta.IsNegative() {
			return false
		}
	}
	return true
}
