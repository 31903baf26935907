package grid

import (
	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

// EmployeeRecords indexes records by their owning employee, remembering the
// order in which employees were first seen so that a flattened employee list
// is stable across renders.
type EmployeeRecords[T any] struct {
	ByEmployee map[int64][]T
	order      []int64
	owners     map[int64]domain.User
}

func newEmployeeRecords[T any]() *EmployeeRecords[T] {
	return &EmployeeRecords[T]{
		ByEmployee: make(map[int64][]T),
		owners:     make(map[int64]domain.User),
	}
}

func (g *EmployeeRecords[T]) add(owner domain.User, record T) {
	if _, seen := g.ByEmployee[owner.ID]; !seen {
		g.order = append(g.order, owner.ID)
		g.owners[owner.ID] = owner
	}
	g.ByEmployee[owner.ID] = append(g.ByEmployee[owner.ID], record)
}

// GroupShiftsByEmployee partitions shifts by assignee. Placeholder shifts
// without an assignee are valid domain objects but have no row in the
// per-employee grid, so they are dropped here silently.
func GroupShiftsByEmployee(shifts []domain.Shift) *EmployeeRecords[domain.Shift] {
	g := newEmployeeRecords[domain.Shift]()
	for _, s := range shifts {
		if s.Employee == nil {
			continue
		}
		g.add(*s.Employee, s)
	}
	return g
}

// GroupAvailabilityByEmployee partitions availability entries by employee.
func GroupAvailabilityByEmployee(entries []domain.Availability) *EmployeeRecords[domain.Availability] {
	g := newEmployeeRecords[domain.Availability]()
	for _, a := range entries {
		g.add(a.Employee, a)
	}
	return g
}

// Employees returns the grouped owners in first-seen order, unioned with the
// supplied full employee list (deduplicated by id) so that employees with
// zero records still appear as empty rows. Pass nil to get only the owners
// that actually have records.
func (g *EmployeeRecords[T]) Employees(all []domain.User) []domain.User {
	employees := make([]domain.User, 0, len(g.order)+len(all))
	seen := make(map[int64]bool, len(g.order))

	for _, id := range g.order {
		employees = append(employees, g.owners[id])
		seen[id] = true
	}
	for _, u := range all {
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		employees = append(employees, u)
	}

	return employees
}
