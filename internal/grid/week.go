package grid

import (
	"fmt"
	"time"
)

// Weeks are anchored to Saturday: the grid renders Saturday through Friday.
const weekStartDay = time.Saturday

// WeekDates returns the 7 consecutive calendar dates of the given week of a
// month, Saturday first. The anchor is the first Saturday on or after the 1st
// of the month, advanced by (week-1)*7 days. The window may spill into the
// following month; this is accepted and not clamped. Dates are midnight in
// loc so that downstream day matching happens in the viewer's zone.
func WeekDates(year int, month time.Month, week int, loc *time.Location) ([]time.Time, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	if week < 1 || week > WeeksInMonth(year, month) {
		return nil, fmt.Errorf("invalid week %d for %s %d", week, month, year)
	}
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(weekStartDay) - int(first.Weekday()) + 7) % 7
	start := first.AddDate(0, 0, offset+(week-1)*7)

	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	return dates, nil
}

// WeeksInMonth is the number of 7-day windows covering the days of the
// month, counted from 1 regardless of the weekday the month begins on. This
// is deliberately not an ISO week-of-year scheme.
func WeeksInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return (days + 6) / 7
}

// WeekLabel renders the ordinal label shown in week selectors, e.g.
// "1st Week".
func WeekLabel(week int) string {
	suffix := "th"
	switch week % 10 {
	case 1:
		if week%100 != 11 {
			suffix = "st"
		}
	case 2:
		if week%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if week%100 != 13 {
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s Week", week, suffix)
}
