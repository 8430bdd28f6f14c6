package finreport

// SeriesAnalysis is the outcome of analysing one daily series.
type SeriesAnalysis struct {
	Deltas     []DeltaRecord
	Extremes   Extremes
	Consistent bool
}

// AnalyzeSeries runs the full delta analysis over one daily series.
func AnalyzeSeries(records []DailyRecord) SeriesAnalysis {
	deltas := Differences(records)
	return SeriesAnalysis{
		Deltas:     deltas,
		Extremes:   FindExtremes(deltas),
		Consistent: Consistent(deltas),
	}
}

// Summary aggregates the analysis of the three financial reports. It is
// derived, never persisted, and recomputed on every run.
type Summary struct {
	HighestOverhead OverheadRecord
	Cash            SeriesAnalysis
	Profit          SeriesAnalysis
}

// NewSummary analyses the three reports that feed the summary report.
// Cash and profit go through the same pipeline; only the input series
// differs.
func NewSummary(cash, profit []DailyRecord, overheads []OverheadRecord) *Summary {
	return &Summary{
		HighestOverhead: HighestOverhead(overheads),
		Cash:            AnalyzeSeries(cash),
		Profit:          AnalyzeSeries(profit),
	}
}
