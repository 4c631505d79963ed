package score

// ScoreIRA implements Inter-Rater Agreement scoring on
// two label sequences, normally the same joint-compressed epoch sequences
// DP consumes.
func ScoreIRA(ref, hyp []string) PerFileResult {
	if len(ref) != len(hyp) {
		panicInvariant("ScoreIRA: ref and hyp length mismatch")
	}
	confusion := NewConfusionMatrix()
	for i := range ref {
		confusion.Add(ref[i], hyp[i], 1)
	}
	labels := confusion.Labels()

	perLabelKappa := make(map[string]float64, len(labels))
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

	return PerFileResult{
		Algorithm:     AlgorithmIRA,
		Confusion:     confusion,
		PerLabel:      DerivePerLabelFromConfusion(confusion),
		PerLabelKappa: perLabelKappa,
		MultiKappa:    multiClassKappa(confusion, labels),
	}
}

// kappaFromCounts computes Cohen's kappa from a 2x2 reduction {a, b, c,
// d}: kappa = 1 when both the numerator and denominator of the
// chance-correction are zero (no disagreement and no variance to
// chance-correct for); kappa = 0 when only the denominator is zero
// (observed agreement is entirely attributable to chance).
func kappaFromCounts(a, b, c, d float64) float64 {
	n := a + b + c + d
	if n == 0 {
		return 1.0
	}
	po := (a + d) / n
	pe := ((a+b)*(a+c) + (c+d)*(b+d)) / (n * n)
	num := po - pe
	den := 1 - pe
	switch {
	case num == 0 && den == 0:
		return 1.0
	case den == 0:
		return 0.0
	default:
		return num / den
	}
}

// multiClassKappa computes the multi-class Cohen's kappa from a full
// confusion matrix: row sums r_i, column sums c_i,
// diagonal D, total N, G = sum(r_i * c_i); kappa = (N*D - G) / (N^2 - G).
func multiClassKappa(m ConfusionMatrix, labels []string) float64 {
	var diag, total, g float64
	for _, l := range labels {
		diag += m.Get(l, l)
	}
	rowSum := make(map[string]float64, len(labels))
	colSum := make(map[string]float64, len(labels))
	for _, ri := range labels {
		for _, ci := range labels {
			v := m.Get(ri, ci)
			total += v
			rowSum[ri] += v
			colSum[ci] += v
		}
	}
	for _, l := range labels {
		g += rowSum[l] * colSum[l]
	}
	num := total*diag - g
	den := total*total - g
	switch {
	case num == 0 && den == 0:
		return 1.0
	case den == 0:
		return 0.0
	default:
		return num / den
	}
}
