package score

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
)

func round(x float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return float64(int64(x*scale+sign(x)*0.5)) / scale
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// WriteAggregateSummary renders one algorithm's corpus-level result as a
// text table: aggregate counts at 2 decimals, kappa at 4 decimals.
func WriteAggregateSummary(w io.Writer, r AggregateResult) {
	fmt.Fprintf(w, "=== %s summary (%d files, %.2fs total) ===\n", r.Algorithm, r.NumFiles, r.TotalDurationSeconds)

	labels := make([]string, 0, len(r.PerLabel))
	for l := range r.PerLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"label", "hit", "miss", "false_alarm", "sensitivity", "precision", "f1", "fa/24h"})
	rows := make([][]string, 0, len(labels))
	for _, l := range labels {
		c := r.PerLabel[l]
		rows = append(rows, []string{
			l,
			fmt.Sprintf("%.2f", round(c.Hit, 2)),
			fmt.Sprintf("%.2f", round(c.Miss, 2)),
			fmt.Sprintf("%.2f", round(c.FalseAlarm, 2)),
			fmt.Sprintf("%.4f", round(r.Sensitivity[l], 4)),
			fmt.Sprintf("%.4f", round(r.Precision[l], 4)),
			fmt.Sprintf("%.4f", round(r.F1[l], 4)),
			fmt.Sprintf("%.2f", round(r.FAPer24h[l], 2)),
		})
	}
	table.AppendBulk(rows)
	table.Render()

	if r.Confusion != nil {
		fmt.Fprintln(w, "confusion matrix (ref rows, hyp columns):")
		writeConfusion(w, r.Confusion, labels)
	}

	if r.Algorithm == AlgorithmIRA {
		fmt.Fprintf(w, "multi-class kappa: %.4f\n", round(r.MultiKappa, 4))
		for _, l := range labels {
			fmt.Fprintf(w, "kappa[%s]: %.4f\n", l, round(r.PerLabelKappa[l], 4))
		}
	}

	if len(r.SkippedFiles) > 0 {
		fmt.Fprintf(w, "skipped files: %v\n", r.SkippedFiles)
	}
}

func writeConfusion(w io.Writer, m ConfusionMatrix, labels []string) {
	table := tablewriter.NewWriter(w)
	header := append([]string{"ref \\ hyp"}, labels...)
	table.SetHeader(header)
	for _, ref := range labels {
		row := make([]string, 0, len(labels)+1)
		row = append(row, ref)
		for _, hyp := range labels {
			row = append(row, fmt.Sprintf("%.2f", round(m.Get(ref, hyp), 2)))
		}
		table.Append(row)
	}
	table.Render()
}

// WriteCombinedSummary renders every algorithm's aggregate result into a
// single combined artifact.
func WriteCombinedSummary(w io.Writer, results map[Algorithm]AggregateResult) {
	order := []Algorithm{AlgorithmTAES, AlgorithmEpoch, AlgorithmOverlap, AlgorithmDP, AlgorithmIRA}
	for _, alg := range order {
		r, ok := results[alg]
		if !ok {
			continue
		}
		WriteAggregateSummary(w, r)
		fmt.Fprintln(w)
	}
}
