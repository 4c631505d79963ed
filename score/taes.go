package score

// eventsOverlap reports whether h and r overlap under the half-open
// interval test used throughout TAES and Overlap: h.Stop > r.Start AND
// h.Start < r.Stop.
func eventsOverlap(a, b Event) bool {
	return b.Stop > a.Start && b.Start < a.Stop
}

// overlapAmount returns the length of the intersection of a and b, which
// is > 0 only when eventsOverlap(a, b) and 0 otherwise.
func overlapAmount(a, b Event) float64 {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.Stop
	if b.Stop < hi {
		hi = b.Stop
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func filterLabel(events []Event, label string) []Event {
	var out []Event
	for _, e := range events {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

func distinctNonNullLabels(nullClass string, eventLists ...[]Event) []string {
	seen := make(map[string]struct{})
	for _, events := range eventLists {
		for _, e := range events {
			if e.Label == nullClass {
				continue
			}
			seen[e.Label] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}

// ScoreTAES implements Time-Aligned Event Scoring.
// ref and hyp are the raw (post-label-mapping, pre-augmentation) event
// sequences; TAES scores positive-label events directly and does not
// require a gapless timeline. nullClass events are excluded from the
// scored label set, since every uncovered interval is implicitly
// background and NEDC-style event scoring is only meaningful for the
// positive classes.
func ScoreTAES(ref, hyp []Event, nullClass string) PerFileResult {
	perLabel := make(map[string]LabelCounts)
	for _, label := range distinctNonNullLabels(nullClass, ref, hyp) {
		refs := filterLabel(ref, label)
		hyps := filterLabel(hyp, label)

		primaryOverlap := make(map[int]float64)
		extraMiss := 0.0

		for _, h := range hyps {
			var overlapping []int
			for ri, r := range refs {
				if eventsOverlap(r, h) {
					overlapping = append(overlapping, ri)
				}
			}
			if len(overlapping) == 0 {
				continue
			}
			primary := overlapping[0]
			primaryOverlap[primary] += overlapAmount(refs[primary], h)
			extraMiss += float64(len(overlapping) - 1)
		}

		var hit, miss float64
		for ri, r := range refs {
			o, hasPrimary := primaryOverlap[ri]
			anyOverlap := hasPrimary
			if !anyOverlap {
				for _, h := range hyps {
					if eventsOverlap(r, h) {
						anyOverlap = true
						break
					}
				}
			}
			switch {
			case !anyOverlap:
				miss += 1.0
			case hasPrimary:
				dur := r.duration()
				oc := o
				if oc < 0 {
					oc = 0
				}
				if oc > dur {
					oc = dur
				}
				hit += oc / dur
				miss += 1 - oc/dur
			default:
				// purely secondary overlap; its +1.0 was already
				// folded into extraMiss above.
			}
		}
		miss += extraMiss

		var fa float64
		for _, h := range hyps {
			var overlapSum, refDurSum float64
			matched := false
			for _, r := range refs {
				if !eventsOverlap(r, h) {
					continue
				}
				matched = true
				overlapSum += overlapAmount(r, h)
				refDurSum += r.duration()
			}
			if !matched {
				fa += 1.0
				continue
			}
			norm := refDurSum
			if norm <= 0 {
				norm = h.duration()
			}
			nonOverlap := h.duration() - overlapSum
			fa += clampUnit(nonOverlap / norm)
		}

		perLabel[label] = LabelCounts{Hit: hit, Miss: miss, FalseAlarm: fa}
	}
	return PerFileResult{Algorithm: AlgorithmTAES, PerLabel: perLabel}
}
