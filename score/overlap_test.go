package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOverlap_AnyOverlapCountsAsWholeHit(t *testing.T) {
	ref := []Event{{Start: 0, Stop: 10, Label: "seiz"}}
	hyp := []Event{{Start: 9, Stop: 20, Label: "seiz"}}
	r := ScoreOverlap(ref, hyp, "bckg")
	c := r.PerLabel["seiz"]
	assert.Equal(t, 1.0, c.Hit)
	assert.Equal(t, 0.0, c.Miss)
	assert.Equal(t, 0.0, c.FalseAlarm)
}

func TestScoreOverlap_UnmatchedRefIsMiss(t *testing.T) {
	ref := []Event{{Start: 0, Stop: 10, Label: "seiz"}}
	hyp := []Event{{Start: 20, Stop: 30, Label: "seiz"}}
	r := ScoreOverlap(ref, hyp, "bckg")
	c := r.PerLabel["seiz"]
	assert.Equal(t, 0.0, c.Hit)
	assert.Equal(t, 1.0, c.Miss)
	assert.Equal(t, 1.0, c.FalseAlarm)
}

func TestScoreOverlap_OneHypothesisMatchingTwoRefsCountsBothHits(t *testing.T) {
	ref := []Event{
		{Start: 0, Stop: 5, Label: "seiz"},
		{Start: 20, Stop: 25, Label: "seiz"},
	}
	hyp := []Event{{Start: 0, Stop: 25, Label: "seiz"}}
	r := ScoreOverlap(ref, hyp, "bckg")
	c := r.PerLabel["seiz"]
	assert.Equal(t, 2.0, c.Hit)
	assert.Equal(t, 0.0, c.FalseAlarm)
}

func TestPerFileResult_InsertionsAndDeletionsNaming(t *testing.T) {
	r := PerFileResult{PerLabel: map[string]LabelCounts{
		"seiz": {Hit: 1, Miss: 2, FalseAlarm: 3},
	}}
	assert.Equal(t, map[string]float64{"seiz": 3}, r.Insertions())
	assert.Equal(t, map[string]float64{"seiz": 2}, r.Deletions())
}
