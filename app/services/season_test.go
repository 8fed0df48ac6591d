package services

import (
	"testing"
	"time"
)

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month  time.Month
		season string
	}{
		{time.January, SeasonWinter},
		{time.February, SeasonWinter},
		{time.March, SeasonSpring},
		{time.April, SeasonSpring},
		{time.May, SeasonSpring},
		{time.June, SeasonSummer},
		{time.July, SeasonSummer},
		{time.August, SeasonSummer},
		{time.September, SeasonFall},
		{time.October, SeasonFall},
		{time.November, SeasonFall},
		{time.December, SeasonWinter},
	}
	for _, tt := range tests {
		if got := SeasonForMonth(tt.month); got != tt.season {
			t.Errorf("SeasonForMonth(%v) = %q, want %q", tt.month, got, tt.season)
		}
	}
}

func TestSeasonYear(t *testing.T) {
	tests := []struct {
		date time.Time
		year int
	}{
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 2025},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), 2024},
		{time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), 2024},
	}
	for _, tt := range tests {
		if got := SeasonYear(tt.date); got != tt.year {
			t.Errorf("SeasonYear(%v) = %d, want %d", tt.date, got, tt.year)
		}
	}
}

func TestSeasonRange(t *testing.T) {
	tests := []struct {
		season     string
		year       int
		start, end string
	}{
		{SeasonSpring, 2024, "2024-03-01", "2024-05-31"},
		{SeasonSummer, 2024, "2024-06-01", "2024-08-31"},
		{SeasonFall, 2024, "2024-09-01", "2024-11-30"},
		{SeasonWinter, 2024, "2024-12-01", "2025-02-28"},
		// Winter 2023 ends in leap-year February.
		{SeasonWinter, 2023, "2023-12-01", "2024-02-29"},
	}
	for _, tt := range tests {
		start, end := SeasonRange(tt.season, tt.year)
		if got := start.Format("2006-01-02"); got != tt.start {
			t.Errorf("SeasonRange(%s, %d) start = %s, want %s", tt.season, tt.year, got, tt.start)
		}
		if got := end.Format("2006-01-02"); got != tt.end {
			t.Errorf("SeasonRange(%s, %d) end = %s, want %s", tt.season, tt.year, got, tt.end)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	if start.Format("2006-01-02") != "2024-02-01" {
		t.Errorf("unexpected start %v", start)
	}
	if end.Format("2006-01-02") != "2024-02-29" {
		t.Errorf("unexpected end %v", end)
	}
}

func TestGoalKeys(t *testing.T) {
	if got := MonthlyGoalKey(2024, time.June); got != "monthly_2024_6" {
		t.Errorf("MonthlyGoalKey = %q", got)
	}
	if got := MonthlyGoalKey(2024, time.December); got != "monthly_2024_12" {
		t.Errorf("MonthlyGoalKey = %q", got)
	}
	if got := SeasonalGoalKey(2024, SeasonWinter); got != "seasonal_2024_Winter" {
		t.Errorf("SeasonalGoalKey = %q", got)
	}
}
