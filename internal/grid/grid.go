// Package grid resolves the weekly schedule grid: given a month, an ordinal
// week within it and a flat list of dated records, it produces the
// employee-by-day matrix the calendar views render.
package grid

import (
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

type ShiftCell struct {
	Date  time.Time     `json:"date"`
	Shift *domain.Shift `json:"shift"`
}

type ShiftRow struct {
	Employee domain.User `json:"employee"`
	Cells    []ShiftCell `json:"cells"`
}

type AvailabilityCell struct {
	Date    time.Time             `json:"date"`
	Entries []domain.Availability `json:"entries"`
}

type AvailabilityRow struct {
	Employee domain.User        `json:"employee"`
	Cells    []AvailabilityCell `json:"cells"`
}

// BuildShiftGrid resolves one row per employee across the 7 dates of the
// requested week. Employees from the full list appear even with zero shifts;
// placeholder shifts without an assignee contribute no row.
func BuildShiftGrid(shifts []domain.Shift, allEmployees []domain.User, year int, month time.Month, week int, locationID int64, loc *time.Location) ([]time.Time, []ShiftRow, error) {
	dates, err := WeekDates(year, month, week, loc)
	if err != nil {
		return nil, nil, err
	}

	grouped := GroupShiftsByEmployee(shifts)
	rows := make([]ShiftRow, 0)
	for _, employee := range grouped.Employees(allEmployees) {
		row := ShiftRow{
			Employee: employee,
			Cells:    make([]ShiftCell, len(dates)),
		}
		for i, date := range dates {
			row.Cells[i] = ShiftCell{
				Date:  date,
				Shift: ShiftOn(grouped.ByEmployee[employee.ID], date, locationID, loc),
			}
		}
		rows = append(rows, row)
	}

	return dates, rows, nil
}

// BuildAvailabilityGrid is the collect-all variant of BuildShiftGrid: each
// cell holds every availability entry for that employee and day.
func BuildAvailabilityGrid(entries []domain.Availability, allEmployees []domain.User, year int, month time.Month, week int, locationID int64, loc *time.Location) ([]time.Time, []AvailabilityRow, error) {
	dates, err := WeekDates(year, month, week, loc)
	if err != nil {
		return nil, nil, err
	}

	grouped := GroupAvailabilityByEmployee(entries)
	rows := make([]AvailabilityRow, 0)
	for _, employee := range grouped.Employees(allEmployees) {
		row := AvailabilityRow{
			Employee: employee,
			Cells:    make([]AvailabilityCell, len(dates)),
		}
		for i, date := range dates {
			row.Cells[i] = AvailabilityCell{
				Date:    date,
				Entries: AvailabilityOn(grouped.ByEmployee[employee.ID], date, locationID, loc),
			}
		}
		rows = append(rows, row)
	}

	return dates, rows, nil
}
