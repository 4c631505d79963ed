package score

// ScoreOverlap implements the Any-Overlap scorer: a
// coarse per-label event count with no confusion matrix. Like TAES, it
// scores the raw event sequences directly and excludes nullClass.
func ScoreOverlap(ref, hyp []Event, nullClass string) PerFileResult {
	perLabel := make(map[string]LabelCounts)
	for _, label := range distinctNonNullLabels(nullClass, ref, hyp) {
		refs := filterLabel(ref, label)
		hyps := filterLabel(hyp, label)

		var hit, miss, fa float64
		for _, r := range refs {
			matched := false
			for _, h := range hyps {
				if eventsOverlap(r, h) {
					matched = true
					break
				}
			}
			if matched {
				hit++
			} else {
				miss++
			}
		}
		for _, h := range hyps {
			matched := false
			for _, r := range refs {
				if eventsOverlap(r, h) {
					matched = true
					break
				}
			}
			if !matched {
				fa++
			}
		}
		perLabel[label] = LabelCounts{Hit: hit, Miss: miss, FalseAlarm: fa}
	}
	return PerFileResult{Algorithm: AlgorithmOverlap, PerLabel: perLabel}
}

// Insertions returns the false_alarm counts under the Overlap scorer's
// "insertions" naming.
func (r PerFileResult) Insertions() map[string]float64 {
	out := make(map[string]float64, len(r.PerLabel))
	for label, c := range r.PerLabel {
		out[label] = c.FalseAlarm
	}
	return out
}

// Deletions returns the miss counts under the Overlap scorer's
// "deletions" naming.
func (r PerFileResult) Deletions() map[string]float64 {
	out := make(map[string]float64, len(r.PerLabel))
	for label, c := range r.PerLabel {
		out[label] = c.Miss
	}
	return out
}
