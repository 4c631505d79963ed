package score

// dpBoundary is the sentinel padded onto both sequences before alignment
//. It can never equal a real label because labels are
// always non-empty after mapping.
const dpBoundary = ""

// DPConfig holds the edit-distance penalties for the DP alignment scorer.
type DPConfig struct {
	Del float64
	Ins float64
	Sub float64
}

// DefaultDPConfig returns the default unit penalties (del = ins = sub =
// 1.0).
func DefaultDPConfig() DPConfig {
	return DPConfig{Del: 1.0, Ins: 1.0, Sub: 1.0}
}

// ScoreDP implements dynamic-programming alignment on
// two label sequences, normally the joint-compressed epoch sequences
// produced by CompressPairs. It reports a confusion matrix of
// substitutions only (the diagonal is left empty; matches are reported
// through PerLabel's Hit field instead).
func ScoreDP(ref, hyp []string, cfg DPConfig) PerFileResult {
	refP := make([]string, 0, len(ref)+2)
	refP = append(refP, dpBoundary)
	refP = append(refP, ref...)
	refP = append(refP, dpBoundary)

	hypP := make([]string, 0, len(hyp)+2)
	hypP = append(hypP, dpBoundary)
	hypP = append(hypP, hyp...)
	hypP = append(hypP, dpBoundary)

	m, n := len(refP), len(hypP)
	d := make([][]float64, m)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < m; i++ {
		d[i][0] = float64(i) * cfg.Del
	}
	for j := 0; j < n; j++ {
		d[0][j] = float64(j) * cfg.Ins
	}
	for i := 1; i < m; i++ {
		for j := 1; j < n; j++ {
			subCost := cfg.Sub
			if refP[i-1] == hypP[j-1] {
				subCost = 0
			}
			best := d[i-1][j] + cfg.Del
			if v := d[i][j-1] + cfg.Ins; v < best {
				best = v
			}
			if v := d[i-1][j-1] + subCost; v < best {
				best = v
			}
			d[i][j] = best
		}
	}

	hitsByLabel := make(map[string]float64)
	delByLabel := make(map[string]float64)
	insByLabel := make(map[string]float64)
	subs := NewConfusionMatrix()

	i, j := m-1, n-1
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && refP[i-1] == hypP[j-1] && d[i][j] == d[i-1][j-1]:
			if refP[i-1] != dpBoundary {
				hitsByLabel[refP[i-1]]++
			}
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+cfg.Sub:
			if refP[i-1] != dpBoundary && hypP[j-1] != dpBoundary {
				subs.Add(refP[i-1], hypP[j-1], 1)
			}
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+cfg.Del:
			if refP[i-1] != dpBoundary {
				delByLabel[refP[i-1]]++
			}
			i--
		default:
			if hypP[j-1] != dpBoundary {
				insByLabel[hypP[j-1]]++
			}
			j--
		}
	}

	labels := make(map[string]struct{})
	for l := range hitsByLabel {
		labels[l] = struct{}{}
	}
	for l := range delByLabel {
		labels[l] = struct{}{}
	}
	for l := range insByLabel {
		labels[l] = struct{}{}
	}
	for _, l := range subs.Labels() {
		labels[l] = struct{}{}
	}

	perLabel := make(map[string]LabelCounts, len(labels))
	for l := range labels {
		var subFrom float64
		for _, other := range subs.Labels() {
			subFrom += subs.Get(l, other)
		}
		perLabel[l] = LabelCounts{
			Hit:        hitsByLabel[l],
			Miss:       delByLabel[l] + subFrom,
			FalseAlarm: insByLabel[l],
		}
	}

	return PerFileResult{
		Algorithm: AlgorithmDP,
		Confusion: subs,
		PerLabel:  perLabel,
	}
}
