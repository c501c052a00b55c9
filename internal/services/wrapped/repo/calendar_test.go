package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticCalendarShape(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	weeks := syntheticCalendar([]time.Time{now.AddDate(0, 0, -1)}, now)

	require.Len(t, weeks, 21)
	for _, w := range weeks {
		require.Len(t, w.ContributionDays, 7)
	}

	// starts on a Sunday and stays chronological with no gaps or duplicates
	first, err := time.Parse("2006-01-02", weeks[0].ContributionDays[0].Date)
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, first.Weekday())

	prev := first.AddDate(0, 0, -1)
	for _, w := range weeks {
		for i, d := range w.ContributionDays {
			assert.Equal(t, i, d.Weekday)
			cur, err := time.Parse("2006-01-02", d.Date)
			require.NoError(t, err)
			assert.Equal(t, prev.AddDate(0, 0, 1), cur)
			prev = cur
		}
	}
}

func TestSyntheticCalendarBucketsByDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	day := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	weeks := syntheticCalendar([]time.Time{
		day.Add(9 * time.Hour),
		day.Add(23 * time.Hour),
		day.AddDate(0, 0, 1).Add(time.Hour),
	}, now)

	counts := map[string]int{}
	total := 0
	for _, w := range weeks {
		for _, d := range w.ContributionDays {
			counts[d.Date] += d.ContributionCount
			total += d.ContributionCount
		}
	}

	assert.Equal(t, 2, counts["2025-08-18"])
	assert.Equal(t, 1, counts["2025-08-19"])
	assert.Equal(t, 3, total)
}

func TestSyntheticCalendarFutureDaysStayZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 20, 15, 0, 0, 0, time.UTC)
	weeks := syntheticCalendar([]time.Time{now}, now)

	last := weeks[len(weeks)-1].ContributionDays
	seenToday := false
	for _, d := range last {
		if d.Date == "2025-08-20" {
			seenToday = true
			assert.Equal(t, 1, d.ContributionCount)
		}
		if d.Date > "2025-08-20" {
			assert.Zero(t, d.ContributionCount)
		}
	}
	assert.True(t, seenToday)
}
