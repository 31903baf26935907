package grid

import (
	"testing"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func testEmployee(id int64, email string) domain.User {
	return domain.User{ID: id, Email: email, Role: domain.RoleEmployee}
}

func TestGroupShiftsByEmployeeDropsPlaceholders(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	shifts := []domain.Shift{
		{ID: 10, Employee: nil, Date: day}, // unassigned placeholder
		{ID: 11, Employee: &alice, Date: day},
		{ID: 12, Employee: &alice, Date: day.AddDate(0, 0, 1)},
	}

	g := GroupShiftsByEmployee(shifts)
	require.Len(t, g.ByEmployee, 1)
	require.Len(t, g.ByEmployee[alice.ID], 2)
	// original relative order is preserved
	require.Equal(t, int64(11), g.ByEmployee[alice.ID][0].ID)
	require.Equal(t, int64(12), g.ByEmployee[alice.ID][1].ID)
}

func TestEmployeesPreservesFirstSeenOrder(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")
	bob := testEmployee(2, "bob@example.com")
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	g := GroupShiftsByEmployee([]domain.Shift{
		{ID: 1, Employee: &bob, Date: day},
		{ID: 2, Employee: &alice, Date: day},
		{ID: 3, Employee: &bob, Date: day},
	})

	employees := g.Employees(nil)
	require.Len(t, employees, 2)
	require.Equal(t, bob.ID, employees[0].ID)
	require.Equal(t, alice.ID, employees[1].ID)
}

func TestEmployeesUnionsFullListForEmptyRows(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")
	bob := testEmployee(2, "bob@example.com")
	carol := testEmployee(3, "carol@example.com")
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	g := GroupShiftsByEmployee([]domain.Shift{
		{ID: 1, Employee: &bob, Date: day},
	})

	employees := g.Employees([]domain.User{alice, bob, carol})
	require.Len(t, employees, 3)
	// grouped owners first, then the remaining employees without records
	require.Equal(t, bob.ID, employees[0].ID)
	require.Equal(t, alice.ID, employees[1].ID)
	require.Equal(t, carol.ID, employees[2].ID)
}

func TestGroupAvailabilityByEmployee(t *testing.T) {
	alice := testEmployee(1, "alice@example.com")
	day := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	g := GroupAvailabilityByEmployee([]domain.Availability{
		{ID: 1, Employee: alice, Date: day},
		{ID: 2, Employee: alice, Date: day},
	})

	require.Len(t, g.ByEmployee[alice.ID], 2)
	require.Equal(t, []domain.User{alice}, g.Employees(nil))
}
