package finreport

// DailyRecord is one day's figure from a daily CSV report, either cash
// on hand or net profit. Records keep the source row order.
type DailyRecord struct {
	Day   int
	Value Amount
}

// DeltaRecord is the change of a daily figure from the previous day.
type DeltaRecord struct {
	Day   int
	Delta Amount
}

// OverheadRecord is one expense category and its share of revenue.
type OverheadRecord struct {
	Category string
	Percent  Percent
}
