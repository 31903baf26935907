package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekDatesStartsOnFirstSaturday(t *testing.T) {
	dates, err := WeekDates(2025, time.July, 1, time.UTC)
	require.NoError(t, err)
	require.Len(t, dates, 7)

	require.Equal(t, time.Saturday, dates[0].Weekday())
	require.Equal(t, "2025-07-05", dates[0].Format("2006-01-02"))
	require.Equal(t, "2025-07-11", dates[6].Format("2006-01-02"))

	for i := 1; i < len(dates); i++ {
		require.Equal(t, dates[i-1].AddDate(0, 0, 1), dates[i], "dates must be consecutive")
	}
}

func TestWeekDatesSecondWeekIsSevenDaysLater(t *testing.T) {
	week1, err := WeekDates(2025, time.July, 1, time.UTC)
	require.NoError(t, err)
	week2, err := WeekDates(2025, time.July, 2, time.UTC)
	require.NoError(t, err)

	require.Equal(t, "2025-07-12", week2[0].Format("2006-01-02"))
	for i := range week2 {
		require.Equal(t, week1[i].AddDate(0, 0, 7), week2[i])
	}
}

func TestWeekDatesMaySpillIntoNextMonth(t *testing.T) {
	// the last window of a month is allowed to run past its end; no clamping
	dates, err := WeekDates(2025, time.July, 5, time.UTC)
	require.NoError(t, err)
	require.Equal(t, time.August, dates[6].Month())
}

func TestWeekDatesFirstDayAlreadySaturday(t *testing.T) {
	// 2025-11-01 is a Saturday, so week 1 starts on the 1st
	dates, err := WeekDates(2025, time.November, 1, time.UTC)
	require.NoError(t, err)
	require.Equal(t, "2025-11-01", dates[0].Format("2006-01-02"))
}

func TestWeekDatesRejectsMalformedInput(t *testing.T) {
	_, err := WeekDates(2025, time.Month(13), 1, time.UTC)
	require.Error(t, err)

	_, err = WeekDates(2025, time.July, 0, time.UTC)
	require.Error(t, err)

	_, err = WeekDates(2025, time.July, 6, time.UTC)
	require.Error(t, err, "July 2025 only offers 5 weeks")
}

func TestWeeksInMonth(t *testing.T) {
	require.Equal(t, 5, WeeksInMonth(2025, time.July))      // 31 days
	require.Equal(t, 4, WeeksInMonth(2025, time.February))  // 28 days
	require.Equal(t, 5, WeeksInMonth(2024, time.February))  // 29 days
	require.Equal(t, 5, WeeksInMonth(2025, time.September)) // 30 days
}

func TestWeekLabel(t *testing.T) {
	require.Equal(t, "1st Week", WeekLabel(1))
	require.Equal(t, "2nd Week", WeekLabel(2))
	require.Equal(t, "3rd Week", WeekLabel(3))
	require.Equal(t, "4th Week", WeekLabel(4))
	require.Equal(t, "5th Week", WeekLabel(5))
}
