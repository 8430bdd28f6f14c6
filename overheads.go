package finreport

// HighestOverhead returns the expense category with the largest
// percentage. The scan is seeded with the zero sentinel (empty
// category, 0%), so an empty or all-non-positive input returns the
// sentinel; ties keep the first category encountered.
func HighestOverhead(overheads []OverheadRecord) OverheadRecord {
	var highest OverheadRecord
	for _, o := range overheads {
		if o.Percent.GreaterThan(highest.Percent) {
			highest = o
		}
	}
	return highest
}
