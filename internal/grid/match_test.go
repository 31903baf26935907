package grid

import (
	"testing"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSameLocalDayUsesViewerZone(t *testing.T) {
	viewer := time.FixedZone("UTC+2", 2*60*60)

	// 2025-07-05T23:30:00-05:00 is 2025-07-06T06:30:00 in a UTC+2 viewer
	// zone: the local day is the 6th even though the stored day is the 5th.
	stored := time.Date(2025, 7, 5, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	july6 := time.Date(2025, 7, 6, 0, 0, 0, 0, viewer)
	july5 := time.Date(2025, 7, 5, 0, 0, 0, 0, viewer)

	require.True(t, SameLocalDay(stored, july6, viewer))
	require.False(t, SameLocalDay(stored, july5, viewer))
}

func TestSameLocalDayDiffersFromUTCDay(t *testing.T) {
	viewer := time.FixedZone("UTC-3", -3*60*60)

	// same UTC day as the probe, but a different local day for the viewer
	stored := time.Date(2025, 7, 5, 1, 0, 0, 0, time.UTC) // 2025-07-04T22:00 local
	july5 := time.Date(2025, 7, 5, 12, 0, 0, 0, viewer)

	require.False(t, SameLocalDay(stored, july5, viewer))
	require.True(t, SameLocalDay(stored, july5.AddDate(0, 0, -1), viewer))
}

func TestShiftOnFirstMatchWins(t *testing.T) {
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	records := []domain.Shift{
		{ID: 1, Date: day.Add(8 * time.Hour)},
		{ID: 2, Date: day.Add(14 * time.Hour)}, // violates the one-per-day invariant
	}

	got := ShiftOn(records, day, LocationAll, time.UTC)
	require.NotNil(t, got)
	require.Equal(t, int64(1), got.ID)
}

func TestShiftOnLocationFilter(t *testing.T) {
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	records := []domain.Shift{
		{ID: 1, Date: day, Location: domain.LocationRef{ID: 7}},
		{ID: 2, Date: day, Location: domain.LocationRef{ID: 9}},
	}

	got := ShiftOn(records, day, 9, time.UTC)
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.ID)

	require.Nil(t, ShiftOn(records, day, 12, time.UTC))
}

func TestShiftOnSkipsUnsetDates(t *testing.T) {
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	records := []domain.Shift{
		{ID: 1}, // date failed to parse upstream
		{ID: 2, Date: day},
	}

	got := ShiftOn(records, day, LocationAll, time.UTC)
	require.NotNil(t, got)
	require.Equal(t, int64(2), got.ID)
}

func TestAvailabilityOnCollectsAllMatches(t *testing.T) {
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	records := []domain.Availability{
		{ID: 1, Date: day.Add(9 * time.Hour), Location: domain.LocationRef{ID: 7}},
		{ID: 2, Date: day.Add(17 * time.Hour), Location: domain.LocationRef{ID: 9}},
		{ID: 3, Date: day.AddDate(0, 0, 1)},
	}

	got := AvailabilityOn(records, day, LocationAll, time.UTC)
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(2), got[1].ID)

	filtered := AvailabilityOn(records, day, 9, time.UTC)
	require.Len(t, filtered, 1)
	require.Equal(t, int64(2), filtered[0].ID)
}
