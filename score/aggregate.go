package score

import (
	"sort"

	"github.com/samber/lo"
)

// AggregateResult is the corpus-level sum of per-file results for one
// algorithm, plus metrics derived from the summed counts: derived metrics
// are always recomputed from aggregated counts, never averaged per-file.
type AggregateResult struct {
	Algorithm            Algorithm
	NumFiles             int
	TotalDurationSeconds float64
	PerLabel             map[string]LabelCounts
	Confusion            ConfusionMatrix // nil for TAES and Overlap
	Sensitivity          map[string]float64
	Precision            map[string]float64
	F1                   map[string]float64
	FAPer24h             map[string]float64
	PerLabelKappa        map[string]float64 // IRA only
	MultiKappa           float64            // IRA only
	SkippedFiles         []string
}

// Aggregate sums per-file results for a single algorithm into a
// corpus-level result and recomputes derived metrics from the sums. For
// deterministic output, results are summed in a fixed order: Aggregate
// sorts a copy of results by FileName before summing, so the caller's
// order does not matter.
func Aggregate(algorithm Algorithm, results []PerFileResult, epochDuration float64, skippedFiles []string) AggregateResult {
	sorted := append([]PerFileResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FileName < sorted[j].FileName })

	totalDuration := lo.SumBy(sorted, func(r PerFileResult) float64 { return r.Duration })

	perLabel := lo.Reduce(sorted, func(acc map[string]LabelCounts, r PerFileResult, _ int) map[string]LabelCounts {
		for label, c := range r.PerLabel {
			cur := acc[label]
			cur.Hit += c.Hit
			cur.Miss += c.Miss
			cur.FalseAlarm += c.FalseAlarm
			acc[label] = cur
		}
		return acc
	}, map[string]LabelCounts{})

	var confusion ConfusionMatrix
	if algorithm == AlgorithmEpoch || algorithm == AlgorithmDP || algorithm == AlgorithmIRA {
		confusion = NewConfusionMatrix()
		for _, r := range sorted {
			for ref, row := range r.Confusion {
				for hyp, v := range row {
					confusion.Add(ref, hyp, v)
				}
			}
		}
	}

	sensitivity := make(map[string]float64, len(perLabel))
	precision := make(map[string]float64, len(perLabel))
	f1 := make(map[string]float64, len(perLabel))
	faPer24h := make(map[string]float64, len(perLabel))
	for label, c := range perLabel {
		sensitivity[label] = safeDiv(c.Hit, c.Hit+c.Miss)
		precision[label] = safeDiv(c.Hit, c.Hit+c.FalseAlarm)
		f1[label] = safeDiv(2*precision[label]*sensitivity[label], precision[label]+sensitivity[label])
		faPer24h[label] = faPer24hFor(algorithm, c.FalseAlarm, totalDuration, epochDuration)
	}

	var perLabelKappa map[string]float64
	var multiKappa float64
	if algorithm == AlgorithmIRA && confusion != nil {
		labels := confusion.Labels()
		perLabelKappa = make(map[string]float64, len(labels))
		for _, label := range labels {
			a := confusion.Get(label, label)
			var b, c, d float64
			for _, other := range labels {
				if other == label {
					continue
				}
				b += confusion.Get(label, other)
				c += confusion.Get(other, label)
			}
			for _, ri := range labels {
				if ri == label {
					continue
				}
				for _, ci := range labels {
					if ci == label {
						continue
					}
					d += confusion.Get(ri, ci)
				}
			}
			perLabelKappa[label] = kappaFromCounts(a, b, c, d)
		}
		multiKappa = multiClassKappa(confusion, labels)
	}

	return AggregateResult{
		Algorithm:            algorithm,
		NumFiles:             len(sorted),
		TotalDurationSeconds: totalDuration,
		PerLabel:             perLabel,
		Confusion:            confusion,
		Sensitivity:          sensitivity,
		Precision:            precision,
		F1:                   f1,
		FAPer24h:             faPer24h,
		PerLabelKappa:        perLabelKappa,
		MultiKappa:           multiKappa,
		SkippedFiles:         append([]string(nil), skippedFiles...),
	}
}

// faPer24hFor applies the FA/24h scaling rule:
// event-based algorithms (TAES, Overlap, DP) normalize false positives
// directly by recording duration; Epoch additionally scales by
// epoch_duration because its false positives are epoch counts, not
// events.
func faPer24hFor(algorithm Algorithm, falseAlarms, totalDurationSeconds, epochDuration float64) float64 {
	if totalDurationSeconds <= 0 {
		return 0
	}
	const secondsPerDay = 86400
	if algorithm == AlgorithmEpoch {
		return falseAlarms * epochDuration / totalDurationSeconds * secondsPerDay
	}
	return falseAlarms / totalDurationSeconds * secondsPerDay
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
