package score

// DefaultEpochDuration is the default window width used by the epoch
// sampler, in seconds.
const DefaultEpochDuration = 0.25

// epochEpsilon tolerates floating-point drift when a sample midpoint lands
// exactly on duration; the inclusive variant this implements is required
// for parity with the reference implementation.
const epochEpsilon = 1e-10

// SampleEpochs samples a gapless event timeline at the midpoints of
// fixed-width windows: epochDuration/2 + k*epochDuration for k = 0, 1, ...
// while the midpoint is at most duration + epochEpsilon. events must be
// gapless over [0, duration] (call AugmentEvents first). Each sample takes
// the label of the unique event containing it; events are treated as
// half-open [start, stop) except the last, which is closed on both ends.
func SampleEpochs(events []Event, duration, epochDuration float64) []string {
	if len(events) == 0 {
		return nil
	}
	var labels []string
	idx, n := 0, len(events)
	for k := 0; ; k++ {
		t := epochDuration/2 + float64(k)*epochDuration
		if t > duration+epochEpsilon {
			break
		}
		for idx < n-1 && t >= events[idx].Stop {
			idx++
		}
		labels = append(labels, events[idx].Label)
	}
	return labels
}

// CompressPairs collapses runs of identical consecutive (ref, hyp) label
// pairs in a joint stream: index i+1 is dropped iff ref[i] == ref[i+1] AND
// hyp[i] == hyp[i+1]. Compression is idempotent: applying it to its own
// output is a no-op, since no two adjacent output pairs are ever equal.
func CompressPairs(ref, hyp []string) ([]string, []string) {
	if len(ref) != len(hyp) {
		panicInvariant("CompressPairs: ref and hyp length mismatch")
	}
	if len(ref) == 0 {
		return nil, nil
	}
	refOut := make([]string, 0, len(ref))
	hypOut := make([]string, 0, len(hyp))
	for i := range ref {
		if i > 0 && ref[i] == refOut[len(refOut)-1] && hyp[i] == hypOut[len(hypOut)-1] {
			continue
		}
		refOut = append(refOut, ref[i])
		hypOut = append(hypOut, hyp[i])
	}
	return refOut, hypOut
}
