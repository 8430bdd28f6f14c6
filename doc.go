// Package finreport turns a business's raw CSV financial reports into a
// plain-text summary of its financial health.
//
// It ingests three reports: daily cash on hand, daily net profit, and
// overhead expenses per category. From the two daily series it computes
// day-over-day differences, then scans them for the notable points
// (the highest increase, the highest decrease, and the worst deficits);
// from the overheads it picks the most expensive category.
//
// The core functionalities include:
//   - Record decoding: schema-checked CSV parsing into typed records,
//     tolerant of a leading byte-order mark.
//   - Difference engine: exact day-over-day deltas over a daily series,
//     computed with decimal arithmetic (no float drift).
//   - Extremes analysis: single-pass detection of the highest increase
//     and decrease, and a stable ranking of the worst deficits.
//   - Overhead ranking: the expense category with the largest share.
//   - Summary building: a single aggregate consumed by the renderer.
//
// This package is the foundational logic for the `fsr` command-line
// tool; everything in it is a pure transformation, so one run reads the
// three reports, analyses them in memory, and writes exactly one
// summary file.
package finreport
