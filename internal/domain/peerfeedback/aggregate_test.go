package peerfeedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordWithRating(rating float64) Record {
	ratings := make(map[string]float64, len(CoreValueKeys))
	for _, key := range CoreValueKeys {
		ratings[key] = rating
	}
	return Record{Ratings: ratings}
}

func TestCombineAveragesPerRecordMeans(t *testing.T) {
	records := []Record{recordWithRating(4.0), recordWithRating(4.0), recordWithRating(2.0)}

	aggregate := Combine(records)
	require.Equal(t, 3, aggregate.Count)
	assert.InDelta(t, 3.33, aggregate.AverageScore, 0.001)
	assert.True(t, aggregate.HasData())
}

func TestCombineEmpty(t *testing.T) {
	aggregate := Combine(nil)
	assert.Equal(t, 0, aggregate.Count)
	assert.False(t, aggregate.HasData(), "zero submissions must read as no data, not a zero score")
}

func TestCombineUnevenValues(t *testing.T) {
	mixed := recordWithRating(3.0)
	mixed.Ratings[ValueHumbleExcellence] = 5.0
	// per-record mean: (3*6 + 5) / 7
	aggregate := Combine([]Record{mixed})
	assert.InDelta(t, 3.29, aggregate.AverageScore, 0.001)
}

func TestValidateRecordMinimumLength(t *testing.T) {
	record := recordWithRating(4.0)
	record.EmployeeEmail = "ada@example.org"
	record.Quarter = "Q2"
	record.Comments = map[string]string{}
	for _, key := range CoreValueKeys {
		record.Comments[key] = strings.Repeat("x", MinCommentLength)
	}
	record.Comments[ValueLocallyLed] = "too short"

	issues := ValidateRecord(record)
	require.Len(t, issues, 1)
	assert.Equal(t, ValueLocallyLed, issues[0].Field)
	assert.Contains(t, issues[0].Reason, "currently 9")
}

func TestValidateRecordMissingRatings(t *testing.T) {
	record := Record{
		EmployeeEmail: "ada@example.org",
		Quarter:       "Q1",
		Ratings:       map[string]float64{ValueChristCentered: 6},
		Comments:      map[string]string{},
	}

	issues := ValidateRecord(record)
	// one out-of-range rating, six missing ratings, seven short comments
	assert.Len(t, issues, 14)
}
