package finreport

// Differences computes the day-over-day change of a daily series.
//
// The input is trusted to already be ordered by day; it is not
// re-sorted. The result has one entry per consecutive pair of records,
// keyed by the later day, so an input of length N yields N-1 deltas and
// an input with fewer than two records yields none. Arithmetic is exact,
// no rounding is applied.
func Differences(records []DailyRecord) []DeltaRecord {
	if len(records) < 2 {
		return nil
	}
	deltas := make([]DeltaRecord, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		deltas = append(deltas, DeltaRecord{
			Day:   records[i].Day,
			Delta: records[i].Value.Sub(records[i-1].Value),
		})
	}
	return deltas
}
