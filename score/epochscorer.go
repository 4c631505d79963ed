package score

// ScoreEpochSamples implements the Epoch scorer given two already-sampled,
// equal-length label sequences (ref and hyp, from SampleEpochs on
// augmented timelines). Unlike DP and IRA, the Epoch confusion matrix is
// built from the uncompressed per-epoch samples: each of the
// (duration / epoch_duration) samples contributes one count. Counting
// compressed runs instead would collapse each constant-label stretch down
// to a single entry, which is inconsistent with epoch-scaled FA/24h
// normalization and with known-good reference tallies for long constant
// stretches of a single label.
func ScoreEpochSamples(ref, hyp []string) PerFileResult {
	if len(ref) != len(hyp) {
		panicInvariant("ScoreEpochSamples: ref and hyp length mismatch")
	}
	confusion := NewConfusionMatrix()
	for i := range ref {
		confusion.Add(ref[i], hyp[i], 1)
	}
	return PerFileResult{
		Algorithm: AlgorithmEpoch,
		Confusion: confusion,
		PerLabel:  DerivePerLabelFromConfusion(confusion),
	}
}
