// Package parity implements a validation harness: it runs two
// independently produced scoring runs over the same corpus and reports
// every numeric discrepancy under a configurable tolerance policy.
package parity

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/nedc-bench/nedc-score/score"
)

// Discrepancy is one mismatched field between a candidate and reference
// run.
type Discrepancy struct {
	FileName  string
	Algorithm score.Algorithm
	Field     string
	Candidate float64
	Reference float64
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s[%s].%s: candidate=%v reference=%v", d.FileName, d.Algorithm, d.Field, d.Candidate, d.Reference)
}

// Report is the outcome of a harness run: any discrepancy fails it.
type Report struct {
	Discrepancies []Discrepancy
}

// Passed reports whether the run found zero discrepancies.
func (r Report) Passed() bool { return len(r.Discrepancies) == 0 }

// GroupedByFile partitions discrepancies by the file they came from, so a
// caller can report "N files disagree" without scanning the full list.
func (r Report) GroupedByFile() map[string][]Discrepancy {
	return lo.GroupBy(r.Discrepancies, func(d Discrepancy) string { return d.FileName })
}

// FilePair names one reference/hypothesis annotation pair to score with
// both implementations under test.
type FilePair struct {
	Name string
	Ref  *score.AnnotationFile
	Hyp  *score.AnnotationFile
}

// ScoreFunc scores one file pair under all five algorithms; both the
// candidate implementation and the reference implementation satisfy this
// signature, so score.Evaluate itself can be passed as either.
type ScoreFunc func(ref, hyp *score.AnnotationFile, cfg score.Config) (map[score.Algorithm]score.PerFileResult, error)

// Harness runs a candidate ScoreFunc against a reference ScoreFunc over a
// corpus and compares results with Tolerance.
type Harness struct {
	Tolerance score.ToleranceConfig
}

// NewHarness builds a Harness with the given absolute float tolerance.
func NewHarness(tolerance score.ToleranceConfig) *Harness {
	return &Harness{Tolerance: tolerance}
}

// Run scores every pair with both implementations and compares their
// per-file results. A pair whose scoring fails under either
// implementation aborts the run entirely: a parity run only makes sense
// between two runs that both completed.
func (h *Harness) Run(pairs []FilePair, candidate, reference ScoreFunc, cfg score.Config) (Report, error) {
	var discrepancies []Discrepancy
	for _, pair := range pairs {
		candResults, err := candidate(pair.Ref, pair.Hyp, cfg)
		if err != nil {
			return Report{}, fmt.Errorf("candidate scoring %s: %w", pair.Name, err)
		}
		refResults, err := reference(pair.Ref, pair.Hyp, cfg)
		if err != nil {
			return Report{}, fmt.Errorf("reference scoring %s: %w", pair.Name, err)
		}
		for alg, candResult := range candResults {
			refResult, ok := refResults[alg]
			if !ok {
				continue
			}
			discrepancies = append(discrepancies, compareFileResult(pair.Name, alg, candResult, refResult, h.Tolerance)...)
		}
	}
	sort.Slice(discrepancies, func(i, j int) bool {
		if discrepancies[i].FileName != discrepancies[j].FileName {
			return discrepancies[i].FileName < discrepancies[j].FileName
		}
		return discrepancies[i].Field < discrepancies[j].Field
	})
	return Report{Discrepancies: discrepancies}, nil
}

// isFloatAlgorithm reports whether an algorithm's per-label counts are
// float-valued (TAES's fractional hit/miss/false_alarm) rather than
// integer-valued (Epoch, Overlap, DP, IRA).
func isFloatAlgorithm(alg score.Algorithm) bool { return alg == score.AlgorithmTAES }

func equalValue(tol score.ToleranceConfig, a, b float64, floatValued bool) bool {
	if floatValued {
		return floats.EqualWithinAbs(a, b, tol.AbsTol)
	}
	return a == b
}

func compareFileResult(fileName string, alg score.Algorithm, cand, ref score.PerFileResult, tol score.ToleranceConfig) []Discrepancy {
	floatValued := isFloatAlgorithm(alg)
	var out []Discrepancy

	labels := lo.Uniq(append(lo.Keys(cand.PerLabel), lo.Keys(ref.PerLabel)...))
	sort.Strings(labels)
	for _, l := range labels {
		cc, rc := cand.PerLabel[l], ref.PerLabel[l]
		if !equalValue(tol, cc.Hit, rc.Hit, floatValued) {
			out = append(out, Discrepancy{fileName, alg, "PerLabel[" + l + "].Hit", cc.Hit, rc.Hit})
		}
		if !equalValue(tol, cc.Miss, rc.Miss, floatValued) {
			out = append(out, Discrepancy{fileName, alg, "PerLabel[" + l + "].Miss", cc.Miss, rc.Miss})
		}
		if !equalValue(tol, cc.FalseAlarm, rc.FalseAlarm, floatValued) {
			out = append(out, Discrepancy{fileName, alg, "PerLabel[" + l + "].FalseAlarm", cc.FalseAlarm, rc.FalseAlarm})
		}
	}

	if cand.Confusion != nil || ref.Confusion != nil {
		confLabels := lo.Uniq(append(cand.Confusion.Labels(), ref.Confusion.Labels()...))
		sort.Strings(confLabels)
		for _, rl := range confLabels {
			for _, hl := range confLabels {
				cv, rv := cand.Confusion.Get(rl, hl), ref.Confusion.Get(rl, hl)
				if !equalValue(tol, cv, rv, false) {
					out = append(out, Discrepancy{fileName, alg, fmt.Sprintf("Confusion[%s][%s]", rl, hl), cv, rv})
				}
			}
		}
	}

	if alg == score.AlgorithmIRA {
		if !equalValue(tol, cand.MultiKappa, ref.MultiKappa, true) {
			out = append(out, Discrepancy{fileName, alg, "MultiKappa", cand.MultiKappa, ref.MultiKappa})
		}
		kappaLabels := lo.Uniq(append(lo.Keys(cand.PerLabelKappa), lo.Keys(ref.PerLabelKappa)...))
		sort.Strings(kappaLabels)
		for _, l := range kappaLabels {
			cv, rv := cand.PerLabelKappa[l], ref.PerLabelKappa[l]
			if !equalValue(tol, cv, rv, true) {
				out = append(out, Discrepancy{fileName, alg, "PerLabelKappa[" + l + "]", cv, rv})
			}
		}
	}

	return out
}

// CompareAggregate compares two corpus-level results the same way, for
// validating derived metrics (sensitivity, precision, F1, FA/24h) which
// are always float-tolerant.
func CompareAggregate(fileLabel string, cand, ref score.AggregateResult, tol score.ToleranceConfig) []Discrepancy {
	var out []Discrepancy
	labels := lo.Uniq(append(lo.Keys(cand.PerLabel), lo.Keys(ref.PerLabel)...))
	sort.Strings(labels)
	metrics := []struct {
		name string
		cand map[string]float64
		ref  map[string]float64
	}{
		{"Sensitivity", cand.Sensitivity, ref.Sensitivity},
		{"Precision", cand.Precision, ref.Precision},
		{"F1", cand.F1, ref.F1},
		{"FAPer24h", cand.FAPer24h, ref.FAPer24h},
	}
	for _, m := range metrics {
		for _, l := range labels {
			cv, rv := m.cand[l], m.ref[l]
			if !equalValue(tol, cv, rv, true) {
				out = append(out, Discrepancy{fileLabel, cand.Algorithm, m.name + "[" + l + "]", cv, rv})
			}
		}
	}
	if cand.Algorithm == score.AlgorithmIRA {
		if !equalValue(tol, cand.MultiKappa, ref.MultiKappa, true) {
			out = append(out, Discrepancy{fileLabel, cand.Algorithm, "MultiKappa", cand.MultiKappa, ref.MultiKappa})
		}
	}
	return out
}
