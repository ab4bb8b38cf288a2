package recognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scorecard/internal/domain/scoring"
)

func candidate(email, department string, ratings ...float64) Candidate {
	c := Candidate{Email: email, Name: email, Department: department}
	for _, rating := range ratings {
		c.Scores = append(c.Scores, scoring.LineItem{Rating: rating, Weight: 100})
	}
	return c
}

func TestScoreCombinesTerms(t *testing.T) {
	c := candidate("ada@example.org", "Programs", 4.0, 4.0)
	c.PeerFeedbackScore = 4.0

	score, dataPoints := Score(c)
	assert.Equal(t, 2, dataPoints)
	// 4.0 + 4.0 weighted at 100%, +1.0 peer bonus, +1.0 consistency (zero variance)
	assert.InDelta(t, 10.0, score, 0.0001)
}

func TestScoreSkipsPeerBonusWithoutData(t *testing.T) {
	c := candidate("ada@example.org", "Programs", 3.0)
	score, _ := Score(c)
	assert.InDelta(t, 3.0, score, 0.0001, "single entry gets no consistency bonus and no peer bonus")
}

func TestConsistencyBonus(t *testing.T) {
	assert.InDelta(t, 1.0, ConsistencyBonus([]float64{4, 4, 4}), 0.0001)
	// variance of {5,1} is 4 -> bonus floors at 0
	assert.Equal(t, 0.0, ConsistencyBonus([]float64{5, 1}))
	// variance of {4,3} is 0.25 -> bonus 0.875
	assert.InDelta(t, 0.875, ConsistencyBonus([]float64{4, 3}), 0.0001)
}

func TestRankOrdersAndExcludesEmpty(t *testing.T) {
	a := candidate("a@example.org", "Programs", 4.2)
	b := candidate("b@example.org", "Programs", 3.9)
	c := Candidate{Email: "c@example.org", Name: "c", Department: "Programs"} // no data

	ranked := Rank([]Candidate{b, a, c}, "Programs")
	require.Len(t, ranked, 2, "zero-data employees are excluded, not scored 0")
	assert.Equal(t, "a@example.org", ranked[0].Email)
	assert.Equal(t, "b@example.org", ranked[1].Email)
}

func TestRankStableOnTies(t *testing.T) {
	first := candidate("first@example.org", "Programs", 4.0)
	second := candidate("second@example.org", "Programs", 4.0)

	ranked := Rank([]Candidate{first, second}, "Programs")
	require.Len(t, ranked, 2)
	assert.Equal(t, "first@example.org", ranked[0].Email, "ties keep roster order")
}

func TestRankDepartmentFilter(t *testing.T) {
	ranked := Rank([]Candidate{
		candidate("a@example.org", "Programs", 4.0),
		candidate("b@example.org", "Finance", 5.0),
	}, "Programs")
	require.Len(t, ranked, 1)
	assert.Equal(t, "a@example.org", ranked[0].Email)

	all := Rank([]Candidate{
		candidate("a@example.org", "Programs", 4.0),
		candidate("b@example.org", "Finance", 5.0),
	}, "")
	assert.Len(t, all, 2, "empty filter ranks the whole organization")
}

func TestSelectWinners(t *testing.T) {
	candidates := []Candidate{
		candidate("a@example.org", "Programs", 4.2),
		candidate("b@example.org", "Programs", 3.9),
	}

	winner := SelectMonthWinner(candidates, "Programs", 5, 2026)
	require.NotNil(t, winner)
	assert.Equal(t, "a@example.org", winner.EmployeeEmail)
	assert.Equal(t, AwardMonth, winner.Award)
	assert.Equal(t, "May 2026", winner.Period)
	assert.Equal(t, 1, winner.Rank)
	assert.Equal(t, 2, winner.TotalCandidates)

	quarterly := SelectQuarterWinner(candidates, "Programs", "Q2", 2026)
	require.NotNil(t, quarterly)
	assert.Equal(t, "Q2 2026", quarterly.Period)

	yearly := SelectYearWinner(candidates, "Programs", 2026)
	require.NotNil(t, yearly)
	assert.Equal(t, "2026", yearly.Period)

	assert.Nil(t, SelectMonthWinner(nil, "Programs", 5, 2026))
}

func TestSelectOrganizationWinner(t *testing.T) {
	winner := SelectOrganizationWinner([]Candidate{
		candidate("a@example.org", "Programs", 4.0),
		candidate("b@example.org", "Finance", 5.0),
	}, AwardQuarter, "Q1 2026")

	require.NotNil(t, winner)
	assert.Equal(t, "b@example.org", winner.EmployeeEmail)
	assert.Equal(t, "Organization "+AwardQuarter, winner.Award)
	assert.Equal(t, "Finance", winner.Department)
}

func TestNotificationTemplates(t *testing.T) {
	rec := Recognition{Award: AwardMonth, Period: "May 2026", Score: 4.2}
	assert.Equal(t, "Congratulations! You're Employee of the Month!", NotificationTitle(rec))
	assert.Contains(t, NotificationMessage(rec), "May 2026")
	assert.Contains(t, NotificationMessage(rec), "4.20")
}
