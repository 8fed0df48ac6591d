package services

import (
	"fmt"
	"time"
)

const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
	SeasonWinter = "Winter"
)

// SeasonForMonth maps a calendar month to its season: Spring Mar-May, Summer
// Jun-Aug, Fall Sep-Nov, Winter Dec-Feb.
func SeasonForMonth(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// SeasonYear returns the year a date's season belongs to. Winter spans the
// year boundary: January and February belong to the Winter that started the
// previous December.
func SeasonYear(t time.Time) int {
	if t.Month() == time.January || t.Month() == time.February {
		return t.Year() - 1
	}
	return t.Year()
}

// SeasonRange returns the first and last day of a season. Winter {year} runs
// Dec 1 of year through end of February of year+1; the AddDate keeps leap
// years correct.
func SeasonRange(season string, year int) (time.Time, time.Time) {
	switch season {
	case SeasonSpring:
		return date(year, time.March, 1), date(year, time.May, 31)
	case SeasonSummer:
		return date(year, time.June, 1), date(year, time.August, 31)
	case SeasonFall:
		return date(year, time.September, 1), date(year, time.November, 30)
	default:
		return date(year, time.December, 1), date(year+1, time.March, 1).AddDate(0, 0, -1)
	}
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := date(year, month, 1)
	return start, start.AddDate(0, 1, -1)
}

func MonthlyGoalKey(year int, month time.Month) string {
	return fmt.Sprintf("monthly_%d_%d", year, int(month))
}

func SeasonalGoalKey(year int, season string) string {
	return fmt.Sprintf("seasonal_%d_%s", year, season)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
