package score

import "fmt"

// Evaluate runs all five scorers over one reference/hypothesis file pair
//: label mapping happens once up front; TAES and Overlap
// score the mapped raw events directly, while Epoch, DP, and IRA share
// the augment -> sample steps of sections 4.2-4.3. Epoch scores the
// uncompressed samples; DP and IRA score the joint-compressed pairs.
func Evaluate(ref, hyp *AnnotationFile, cfg Config) (map[Algorithm]PerFileResult, error) {
	lm := cfg.LabelMap.Build()

	refMapped, err := lm.MapEvents(ref.Events)
	if err != nil {
		return nil, fmt.Errorf("mapping reference labels: %w", err)
	}
	hypMapped, err := lm.MapEvents(hyp.Events)
	if err != nil {
		return nil, fmt.Errorf("mapping hypothesis labels: %w", err)
	}

	results := make(map[Algorithm]PerFileResult, 5)

	taes := ScoreTAES(refMapped, hypMapped, lm.NullClass())
	taes.Duration = ref.Duration
	results[AlgorithmTAES] = taes

	overlap := ScoreOverlap(refMapped, hypMapped, lm.NullClass())
	overlap.Duration = ref.Duration
	results[AlgorithmOverlap] = overlap

	refAugmented := AugmentEvents(refMapped, ref.Duration, lm.NullClass())
	hypAugmented := AugmentEvents(hypMapped, hyp.Duration, lm.NullClass())

	refSamples := SampleEpochs(refAugmented, ref.Duration, cfg.Epoch.EpochDuration)
	hypSamples := SampleEpochs(hypAugmented, hyp.Duration, cfg.Epoch.EpochDuration)
	if len(refSamples) != len(hypSamples) {
		panicInvariant("Evaluate: ref and hyp epoch sample counts differ")
	}

	epochResult := ScoreEpochSamples(refSamples, hypSamples)
	epochResult.Duration = ref.Duration
	results[AlgorithmEpoch] = epochResult

	refCompressed, hypCompressed := CompressPairs(refSamples, hypSamples)

	dpResult := ScoreDP(refCompressed, hypCompressed, cfg.DP)
	dpResult.Duration = ref.Duration
	results[AlgorithmDP] = dpResult

	iraResult := ScoreIRA(refCompressed, hypCompressed)
	iraResult.Duration = ref.Duration
	results[AlgorithmIRA] = iraResult

	return results, nil
}
