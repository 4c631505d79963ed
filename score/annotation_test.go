package score

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnnotationFile_RejectsNonPositiveDuration(t *testing.T) {
	_, err := NewAnnotationFile("v1", "p1", "s1", 0, nil)
	assert.ErrorIs(t, err, ErrDurationNonPositive)
}

func TestNewAnnotationFile_RejectsZeroOrNegativeEventDuration(t *testing.T) {
	_, err := NewAnnotationFile("v1", "p1", "s1", 10, []Event{
		{Start: 1, Stop: 1, Label: "seiz"},
	})
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestNewAnnotationFile_RejectsDecreasingStarts(t *testing.T) {
	_, err := NewAnnotationFile("v1", "p1", "s1", 10, []Event{
		{Start: 5, Stop: 6, Label: "seiz"},
		{Start: 1, Stop: 2, Label: "seiz"},
	})
	assert.ErrorIs(t, err, ErrDecreasingStarts)
}

func TestNewAnnotationFile_RejectsOverlappingEvents(t *testing.T) {
	_, err := NewAnnotationFile("v1", "p1", "s1", 10, []Event{
		{Start: 0, Stop: 5, Label: "seiz"},
		{Start: 3, Stop: 6, Label: "bckg"},
	})
	assert.ErrorIs(t, err, ErrOverlappingRefEvents)
}

func TestNewAnnotationFile_AcceptsAdjacentNonOverlappingEvents(t *testing.T) {
	af, err := NewAnnotationFile("v1", "p1", "s1", 10, []Event{
		{Start: 0, Stop: 5, Label: "seiz"},
		{Start: 5, Stop: 10, Label: "bckg"},
	})
	require.NoError(t, err)
	assert.Len(t, af.Events, 2)
}

const sampleCSVBI = `# version = csv_v1.0.0
# bname = aaaaaaaa_s001_t000
# duration = 100.0000 secs
#
channel,start_time,stop_time,label,confidence
TERM,0.0000,10.0000,seiz,1.0000
TERM,10.0000,100.0000,bckg,1.0000
`

func TestParseCSVBI_ParsesHeaderAndRows(t *testing.T) {
	af, err := ParseCSVBI(strings.NewReader(sampleCSVBI), "sample.csv_bi")
	require.NoError(t, err)
	assert.Equal(t, "csv_v1.0.0", af.Version)
	assert.Equal(t, "aaaaaaaa_s001_t000", af.Patient)
	assert.Equal(t, 100.0, af.Duration)
	require.Len(t, af.Events, 2)
	assert.Equal(t, Event{Channel: "TERM", Start: 0, Stop: 10, Label: "seiz", Confidence: 1}, af.Events[0])
	assert.Equal(t, Event{Channel: "TERM", Start: 10, Stop: 100, Label: "bckg", Confidence: 1}, af.Events[1])
}

func TestParseCSVBI_MissingDurationIsError(t *testing.T) {
	input := `# version = csv_v1.0.0
channel,start_time,stop_time,label,confidence
TERM,0.0000,1.0000,seiz,1.0000
`
	_, err := ParseCSVBI(strings.NewReader(input), "missing-duration.csv_bi")
	assert.ErrorIs(t, err, ErrDurationMissing)
}

func TestParseCSVBI_BadHeaderRowIsError(t *testing.T) {
	input := `# duration = 10 secs
not,the,right,header
TERM,0.0000,1.0000,seiz,1.0000
`
	_, err := ParseCSVBI(strings.NewReader(input), "bad-header.csv_bi")
	assert.True(t, errors.Is(err, ErrMalformedHeader))
}

func TestParseCSVBI_BadRowFieldCountIsError(t *testing.T) {
	input := `# duration = 10 secs
channel,start_time,stop_time,label,confidence
TERM,0.0000,1.0000,seiz
`
	_, err := ParseCSVBI(strings.NewReader(input), "bad-row.csv_bi")
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestParseCSVBI_ConfidenceOutOfRangeIsError(t *testing.T) {
	input := `# duration = 10 secs
channel,start_time,stop_time,label,confidence
TERM,0.0000,1.0000,seiz,1.5000
`
	_, err := ParseCSVBI(strings.NewReader(input), "bad-confidence.csv_bi")
	assert.ErrorIs(t, err, ErrMalformedRow)
}
