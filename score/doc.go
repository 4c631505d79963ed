// Package score implements the scoring core for comparing hypothesis
// event-detection annotations against reference annotations for EEG
// recordings.
//
// # Reading Guide
//
// Start with these files to understand the pipeline:
//   - annotation.go: Event and AnnotationFile, and the CSV_BI parser
//   - labelmap.go: raw label -> target alphabet mapping
//   - augment.go: background-gap augmentation into a gapless timeline
//   - epoch.go: fixed-width epoch sampling and joint-pair compression
//
// Five independent scorers build on that shared pipeline:
//   - taes.go: Time-Aligned Event Scoring (fractional hit/miss/false_alarm)
//   - epochscorer.go: confusion-matrix scoring over sampled epochs
//   - overlap.go: any-overlap per-label counts
//   - dp.go: dynamic-programming alignment (edit distance)
//   - ira.go: inter-rater agreement (Cohen's kappa)
//
// aggregate.go sums per-file results into a corpus-level AggregateResult
// and applies the FA/24h normalization. The score/parity subpackage
// compares two independently produced runs under a tolerance policy.
//
// The package is synchronous. The scorers, Evaluate, and Aggregate are pure
// transformations from their inputs to a new result value; I/O happens
// only in ParseCSVBI and LoadConfig (input) and in WriteAggregateSummary
// and WriteCombinedSummary (output). Callers
// that want to score many files concurrently submit one call per file pair
// to their own worker pool and reduce the results with Aggregate.
package score
