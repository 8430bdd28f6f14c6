package finreport

// day is a helper for tests to create a daily record from consts.
func day(d int, v float64) DailyRecord { return DailyRecord{Day: d, Value: A(v)} }

// dd is a helper for tests to create a delta record from consts.
func dd(d int, v float64) DeltaRecord { return DeltaRecord{Day: d, Delta: A(v)} }

// oh is a helper for tests to create an overhead record from consts.
func oh(category string, v float64) OverheadRecord {
	return OverheadRecord{Category: category, Percent: P(v)}
}
