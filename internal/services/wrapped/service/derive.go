package service

import (
	"sort"
	"time"

	"gitwrapped/internal/services/wrapped/domain"
)

const defaultLanguageColor = "#fff"

// calendarStats is everything the single chronological walk produces
type calendarStats struct {
	Streaks           domain.Streaks
	WorkStyle         domain.WorkStyle
	MostProductiveDay domain.MostProductiveDay
	Last90Days        int
}

// deriveCalendar walks the flattened day sequence exactly once
// last90 accumulation only applies to exact calendars, the public path
// counts events directly instead
func deriveCalendar(weeks []domain.Week, now time.Time, exact bool) calendarStats {
	var out calendarStats

	var days []domain.ContributionDay
	for _, w := range weeks {
		days = append(days, w.ContributionDays...)
	}
	if len(days) == 0 {
		return out
	}

	cutoff := now.AddDate(0, 0, -90)

	var (
		run      int
		tempGap  int
		isActive bool
	)
	for _, day := range days {
		if exact {
			if d, err := time.Parse("2006-01-02", day.Date); err == nil && d.After(cutoff) {
				out.Last90Days += day.ContributionCount
			}
		}

		if day.ContributionCount > 0 {
			run++
			if run > out.Streaks.Longest {
				out.Streaks.Longest = run
			}
			// a gap only counts as a break once activity closes it, so
			// leading and trailing zero runs never register
			if isActive {
				if tempGap > out.Streaks.LongestBreak {
					out.Streaks.LongestBreak = tempGap
				}
				tempGap = 0
			}
			isActive = true

			if day.Weekday == 0 || day.Weekday == 6 {
				out.WorkStyle.Weekend += day.ContributionCount
			} else {
				out.WorkStyle.Weekday += day.ContributionCount
			}
		} else {
			run = 0
			if isActive {
				tempGap++
			}
		}

		if day.ContributionCount > out.MostProductiveDay.Count {
			out.MostProductiveDay = domain.MostProductiveDay{Date: day.Date, Count: day.ContributionCount}
		}
	}

	out.Streaks.Current = currentStreak(days)
	return out
}

// currentStreak counts the trailing run of non zero days
// a zero final day does not kill a streak that was alive yesterday; the
// streak that ended yesterday is still reported. Two trailing zero days
// report zero
func currentStreak(days []domain.ContributionDay) int {
	i := len(days) - 1
	if i < 0 {
		return 0
	}
	if days[i].ContributionCount == 0 {
		i--
	}
	n := 0
	for ; i >= 0 && days[i].ContributionCount > 0; i-- {
		n++
	}
	return n
}

// analyzeTiming buckets timestamps by UTC hour and weekday and picks the
// busiest of each, defaulting to noon on Sunday when no sample exists
func analyzeTiming(times []time.Time) domain.Timing {
	if len(times) == 0 {
		return domain.Timing{PeakHour: 12, ActiveDay: 0}
	}
	var hours [24]int
	var days [7]int
	for _, t := range times {
		u := t.UTC()
		hours[u.Hour()]++
		days[int(u.Weekday())]++
	}
	t := domain.Timing{}
	for h, n := range hours {
		if n > hours[t.PeakHour] {
			t.PeakHour = h
		}
	}
	for d, n := range days {
		if n > days[t.ActiveDay] {
			t.ActiveDay = d
		}
	}
	return t
}

// languageStats builds the dominant language distribution and sums stars
// across all fetched repositories
func languageStats(repos []domain.RepoSummary) (langs []domain.Language, stars int) {
	idx := map[string]int{}
	for _, r := range repos {
		stars += r.Stars

		if r.Language == "" {
			continue
		}
		color := r.LanguageColor
		if color == "" {
			color = defaultLanguageColor
		}
		if i, ok := idx[r.Language]; ok {
			langs[i].Count++
			continue
		}
		idx[r.Language] = len(langs)
		langs = append(langs, domain.Language{Name: r.Language, Count: 1, Color: color})
	}

	sort.SliceStable(langs, func(i, j int) bool { return langs[i].Count > langs[j].Count })

	total := 0
	for _, l := range langs {
		total += l.Count
	}
	if total > 0 {
		for i := range langs {
			langs[i].Percent = int(float64(langs[i].Count)/float64(total)*100 + 0.5)
		}
	}
	return langs, stars
}
