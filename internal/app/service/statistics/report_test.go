package statistics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageVisits(t *testing.T) {
	require.Equal(t, 0.0, averageVisits(0, 0))
	require.Equal(t, 0.0, averageVisits(10, 0))
	require.Equal(t, 2.5, averageVisits(10, 4))
	require.Equal(t, 1.0, averageVisits(3, 3))
}

func TestApplyPercentages(t *testing.T) {
	counts := applyPercentages([]MembershipTypeCount{
		{MembershipType: "Basic", Count: 6},
		{MembershipType: "Standard", Count: 3},
		{MembershipType: "Premium", Count: 1},
	})
	require.Len(t, counts, 3)
	require.Equal(t, 60.0, counts[0].Percent)
	require.Equal(t, 30.0, counts[1].Percent)
	require.Equal(t, 10.0, counts[2].Percent)
}

func TestApplyPercentages_ZeroTotal(t *testing.T) {
	counts := applyPercentages([]MembershipTypeCount{{MembershipType: "Basic", Count: 0}})
	require.Equal(t, 0.0, counts[0].Percent)
}

func TestMergeGrowthSeries_ZeroFillsMissingMonths(t *testing.T) {
	joins := []DailyCount{
		{Date: "2024-01", Count: 5},
		{Date: "2024-03", Count: 2},
	}
	expires := []DailyCount{
		{Date: "2024-02", Count: 1},
		{Date: "2024-03", Count: 4},
	}

	got := mergeGrowthSeries(joins, expires)
	require.Equal(t, []MonthlyGrowth{
		{Month: "2024-01", Joins: 5, Expires: 0, Net: 5},
		{Month: "2024-02", Joins: 0, Expires: 1, Net: -1},
		{Month: "2024-03", Joins: 2, Expires: 4, Net: -2},
	}, got)
}

func TestMergeGrowthSeries_Empty(t *testing.T) {
	require.Empty(t, mergeGrowthSeries(nil, nil))
}
