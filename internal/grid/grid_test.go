package grid

import (
	"testing"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildShiftGrid(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")
	bob := testEmployee(2, "bob@example.com")

	shifts := []domain.Shift{
		{ID: 1, Employee: &alice, Date: time.Date(2025, 7, 5, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Employee: &alice, Date: time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC)},
		{ID: 3, Employee: nil, Date: time.Date(2025, 7, 6, 9, 0, 0, 0, time.UTC)},
	}

	dates, rows, err := BuildShiftGrid(shifts, []domain.User{alice, bob}, 2025, time.July, 1, LocationAll, time.UTC)
	require.NoError(t, err)
	require.Len(t, dates, 7)
	require.Len(t, rows, 2)

	require.Equal(t, alice.ID, rows[0].Employee.ID)
	require.NotNil(t, rows[0].Cells[0].Shift) // Saturday the 5th
	require.Equal(t, int64(1), rows[0].Cells[0].Shift.ID)
	require.Nil(t, rows[0].Cells[1].Shift) // Sunday the 6th: placeholder has no row or cell
	require.NotNil(t, rows[0].Cells[3].Shift)
	require.Equal(t, int64(2), rows[0].Cells[3].Shift.ID)

	// bob has no shifts but still gets an empty row
	require.Equal(t, bob.ID, rows[1].Employee.ID)
	for _, cell := range rows[1].Cells {
		require.Nil(t, cell.Shift)
	}
}

func TestBuildShiftGridRejectsBadWeek(t *testing.T) {
	_, _, err := BuildShiftGrid(nil, nil, 2025, time.July, 9, LocationAll, time.UTC)
	require.Error(t, err)
}

func TestBuildAvailabilityGrid(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")

	entries := []domain.Availability{
		{ID: 1, Employee: alice, Date: time.Date(2025, 7, 5, 9, 0, 0, 0, time.UTC), Location: domain.LocationRef{ID: 7}},
		{ID: 2, Employee: alice, Date: time.Date(2025, 7, 5, 14, 0, 0, 0, time.UTC), Location: domain.LocationRef{ID: 9}},
	}

	_, rows, err := BuildAvailabilityGrid(entries, nil, 2025, time.July, 1, LocationAll, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Cells[0].Entries, 2, "both locations on the same day survive")

	_, rows, err = BuildAvailabilityGrid(entries, nil, 2025, time.July, 1, 9, time.UTC)
	require.NoError(t, err)
	require.Len(t, rows[0].Cells[0].Entries, 1)
}
