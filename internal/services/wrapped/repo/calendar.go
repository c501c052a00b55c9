package repo

import (
	"time"

	ptime "gitwrapped/internal/platform/time"
	"gitwrapped/internal/services/wrapped/domain"
)

const (
	calendarWeeks = 21
	daysPerWeek   = 7
)

// syntheticCalendar buckets event timestamps into UTC calendar days over a
// trailing 21 week window ending at now, aligned so each week starts on
// Sunday. Every week holds exactly seven days; days past now stay zero
func syntheticCalendar(times []time.Time, now time.Time) []domain.Week {
	counts := map[string]int{}
	for _, t := range times {
		iso := ptime.DayUTC(t).Format("2006-01-02")
		counts[iso]++
	}

	start := ptime.PrevSunday(now.AddDate(0, 0, -(calendarWeeks-1)*daysPerWeek))

	weeks := make([]domain.Week, 0, calendarWeeks)
	cur := start
	for w := 0; w < calendarWeeks; w++ {
		wk := domain.Week{ContributionDays: make([]domain.ContributionDay, 0, daysPerWeek)}
		for d := 0; d < daysPerWeek; d++ {
			iso := cur.Format("2006-01-02")
			wk.ContributionDays = append(wk.ContributionDays, domain.ContributionDay{
				ContributionCount: counts[iso],
				Date:              iso,
				Weekday:           d,
			})
			cur = cur.AddDate(0, 0, 1)
		}
		weeks = append(weeks, wk)
	}
	return weeks
}
