package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_SumsPerLabelCountsAcrossFiles(t *testing.T) {
	results := []PerFileResult{
		{FileName: "b.csv_bi", Duration: 100, PerLabel: map[string]LabelCounts{"seiz": {Hit: 1, Miss: 1, FalseAlarm: 0}}},
		{FileName: "a.csv_bi", Duration: 200, PerLabel: map[string]LabelCounts{"seiz": {Hit: 2, Miss: 0, FalseAlarm: 1}}},
	}
	agg := Aggregate(AlgorithmTAES, results, DefaultEpochDuration, nil)
	assert.Equal(t, 2, agg.NumFiles)
	assert.Equal(t, 300.0, agg.TotalDurationSeconds)
	assert.Equal(t, 3.0, agg.PerLabel["seiz"].Hit)
	assert.Equal(t, 1.0, agg.PerLabel["seiz"].Miss)
	assert.Equal(t, 1.0, agg.PerLabel["seiz"].FalseAlarm)
}

func TestAggregate_ComputesSensitivityPrecisionF1(t *testing.T) {
	results := []PerFileResult{
		{FileName: "a.csv_bi", Duration: 100, PerLabel: map[string]LabelCounts{"seiz": {Hit: 8, Miss: 2, FalseAlarm: 2}}},
	}
	agg := Aggregate(AlgorithmTAES, results, DefaultEpochDuration, nil)
	assert.InDelta(t, 0.8, agg.Sensitivity["seiz"], 1e-9)
	assert.InDelta(t, 0.8, agg.Precision["seiz"], 1e-9)
	assert.InDelta(t, 0.8, agg.F1["seiz"], 1e-9)
}

func TestAggregate_EpochScalesFAPer24hByEpochDuration(t *testing.T) {
	results := []PerFileResult{
		{FileName: "a.csv_bi", Duration: 86400, PerLabel: map[string]LabelCounts{"seiz": {FalseAlarm: 10}}},
	}
	agg := Aggregate(AlgorithmEpoch, results, 0.25, nil)
	assert.InDelta(t, 2.5, agg.FAPer24h["seiz"], 1e-9)
}

func TestAggregate_EventBasedAlgorithmDoesNotScaleByEpochDuration(t *testing.T) {
	results := []PerFileResult{
		{FileName: "a.csv_bi", Duration: 86400, PerLabel: map[string]LabelCounts{"seiz": {FalseAlarm: 10}}},
	}
	agg := Aggregate(AlgorithmTAES, results, 0.25, nil)
	assert.InDelta(t, 10.0, agg.FAPer24h["seiz"], 1e-9)
}

func TestAggregate_IRARecomputesKappaFromSummedConfusion(t *testing.T) {
	m1 := NewConfusionMatrix()
	m1.Add("seiz", "seiz", 1)
	m1.Add("bckg", "seiz", 1) // disagreement in file 1
	m2 := NewConfusionMatrix()
	m2.Add("seiz", "seiz", 1)
	m2.Add("bckg", "bckg", 1) // agreement in file 2

	results := []PerFileResult{
		{FileName: "a.csv_bi", Confusion: m1, PerLabel: DerivePerLabelFromConfusion(m1)},
		{FileName: "b.csv_bi", Confusion: m2, PerLabel: DerivePerLabelFromConfusion(m2)},
	}
	agg := Aggregate(AlgorithmIRA, results, DefaultEpochDuration, nil)
	assert.Equal(t, 2.0, agg.Confusion.Get("seiz", "seiz"))
	assert.Equal(t, 1.0, agg.Confusion.Get("bckg", "bckg"))
	assert.Equal(t, 1.0, agg.Confusion.Get("bckg", "seiz"))
	// Summed matrix: diag 3, N 4, G = 2*3 + 2*1 = 8 -> (4*3-8)/(16-8) = 0.5.
	assert.InDelta(t, 0.5, agg.MultiKappa, 1e-9)
}

func TestAggregate_RecordsSkippedFiles(t *testing.T) {
	agg := Aggregate(AlgorithmTAES, nil, DefaultEpochDuration, []string{"bad.csv_bi"})
	assert.Equal(t, []string{"bad.csv_bi"}, agg.SkippedFiles)
}

func TestSafeDiv_ZeroDenominatorIsZero(t *testing.T) {
	assert.Equal(t, 0.0, safeDiv(5, 0))
}
