package score

// AugmentEvents converts a sparse, sorted event sequence into a gapless
// timeline covering [0, duration]: every uncovered sub-interval becomes a
// background event labeled nullClass. events must already be sorted by
// Start (NewAnnotationFile enforces this).
//
// Augmentation is idempotent on an already-gapless timeline: walking a
// sequence with no gaps never finds cursor < event.Start, so no background
// events are inserted and the input is returned unchanged in content.
func AugmentEvents(events []Event, duration float64, nullClass string) []Event {
	duration = round4(duration)
	if len(events) == 0 {
		if duration <= 0 {
			return nil
		}
		return []Event{{Channel: "TERM", Start: 0, Stop: duration, Label: nullClass, Confidence: 1.0}}
	}

	out := make([]Event, 0, len(events)*2+1)
	cursor := 0.0
	for _, e := range events {
		if cursor < e.Start {
			out = append(out, Event{Channel: "TERM", Start: cursor, Stop: e.Start, Label: nullClass, Confidence: 1.0})
		}
		out = append(out, e)
		cursor = e.Stop
	}
	if cursor < duration {
		out = append(out, Event{Channel: "TERM", Start: cursor, Stop: duration, Label: nullClass, Confidence: 1.0})
	}
	return out
}

// Augment returns a new AnnotationFile whose Events cover [0, Duration]
// with no gaps.
func Augment(file *AnnotationFile, nullClass string) *AnnotationFile {
	return &AnnotationFile{
		Version:  file.Version,
		Patient:  file.Patient,
		Session:  file.Session,
		Duration: file.Duration,
		Events:   AugmentEvents(file.Events, file.Duration, nullClass),
	}
}
