package analytics

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)

	since, key := resolveWindow(clock, "7d")
	require.Equal(t, "7d", key)
	require.Equal(t, now.Add(-7*24*time.Hour), since)

	since, key = resolveWindow(clock, "1y")
	require.Equal(t, "1y", key)
	require.Equal(t, now.Add(-365*24*time.Hour), since)
}

func TestResolveWindow_UnknownFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)

	since, key := resolveWindow(clock, "14d")
	require.Equal(t, DefaultRange, key)
	require.Equal(t, now.Add(-30*24*time.Hour), since)

	_, key = resolveWindow(clock, "")
	require.Equal(t, DefaultRange, key)
}

func TestFormatDashboard(t *testing.T) {
	raw := facetResult{
		TotalReports: []struct {
			Count int64 `bson:"count"`
		}{{Count: 7}},
		StatusBreakdown: []groupCount{
			{ID: "pending", Count: 4},
			{ID: "verified", Count: 3},
		},
		SeverityBreakdown: []groupCount{
			{ID: "low", Count: 2},
			{ID: "high", Count: 5},
		},
		ReportsOverTime: []groupCount{
			{ID: "2026-08-28", Count: 3},
			{ID: "2026-08-29", Count: 4},
		},
	}

	d := formatDashboard(raw, "7d")

	require.Equal(t, int64(7), d.TotalReports)
	require.Equal(t, map[string]int64{"pending": 4, "verified": 3}, d.StatusBreakdown)
	require.Equal(t, map[string]int64{"low": 2, "high": 5}, d.SeverityBreakdown)
	require.Equal(t, []DailyCount{
		{Date: "2026-08-28", Count: 3},
		{Date: "2026-08-29", Count: 4},
	}, d.ReportsOverTime)
	require.Equal(t, "7d", d.DateRange)

	// Facet sums agree with the total since all derive from one pass
	var statusSum, severitySum, dailySum int64
	for _, v := range d.StatusBreakdown {
		statusSum += v
	}
	for _, v := range d.SeverityBreakdown {
		severitySum += v
	}
	for _, dc := range d.ReportsOverTime {
		dailySum += dc.Count
	}
	require.Equal(t, d.TotalReports, statusSum)
	require.Equal(t, d.TotalReports, severitySum)
	require.Equal(t, d.TotalReports, dailySum)
}

func TestFormatDashboard_Empty(t *testing.T) {
	d := formatDashboard(facetResult{}, "30d")

	require.Equal(t, int64(0), d.TotalReports)
	// Empty groups are omitted, not zero-filled
	require.Empty(t, d.StatusBreakdown)
	require.Empty(t, d.SeverityBreakdown)
	require.Empty(t, d.ReportsOverTime)
	require.NotNil(t, d.ReportsOverTime)
}
