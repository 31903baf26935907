package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

const shiftSelectColumns = `
	s.id,
	s.date,
	s.created_at,
	s.version,
	e.id,
	e.name,
	e.email,
	st.id,
	st.title,
	st.start_time,
	st.end_time,
	st.manager_id,
	l.id,
	l.title
`

func scanShift(scan func(dst ...any) error) (*domain.Shift, error) {
	shift := &domain.Shift{}

	var employeeID sql.NullInt64
	var employeeName sql.NullString
	var employeeEmail sql.NullString
	var managerID sql.NullInt64

	dst := []any{
		&shift.ID,
		&shift.Date,
		&shift.CreatedAt,
		&shift.Version,
		&employeeID,
		&employeeName,
		&employeeEmail,
		&shift.ShiftType.ID,
		&shift.ShiftType.Title,
		&shift.ShiftType.StartTime,
		&shift.ShiftType.EndTime,
		&managerID,
		&shift.Location.ID,
		&shift.Location.Title,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	shift.ShiftType.LocationID = shift.Location.ID
	if managerID.Valid {
		shift.ShiftType.ManagerID = &managerID.Int64
	}

	// a placeholder shift has no assignee
	if employeeID.Valid {
		employee := &domain.User{
			ID:    employeeID.Int64,
			Email: employeeEmail.String,
			Role:  domain.RoleEmployee,
		}
		if employeeName.Valid {
			employee.Name = &employeeName.String
		}
		shift.Employee = employee
	}

	return shift, nil
}

// GetShifts returns one page of shifts, newest date first, optionally
// restricted to a location, together with the total count.
func (r *Repository) GetShifts(locationID int64, page int, limit int) ([]*domain.Shift, int, error) {
	query := `
		SELECT ` + shiftSelectColumns + `,
			COUNT(*) OVER() AS total
		FROM shifts s
		LEFT JOIN users e ON s.employee_id = e.id
		JOIN shift_types st ON s.shift_type_id = st.id
		JOIN locations l ON s.location_id = l.id
		WHERE ($1 = 0 OR s.location_id = $1)
		ORDER BY s.date DESC, s.id
		LIMIT $2 OFFSET $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	rows, err := r.dbpool.QueryContext(ctx, query, locationID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	total := 0
	for rows.Next() {
		shift, err := scanShift(func(dst ...any) error {
			return rows.Scan(append(dst, &total)...)
		})
		if err != nil {
			return nil, 0, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return shifts, total, nil
}

// GetShiftsInRange returns every shift whose date falls inside [from, to),
// optionally restricted to a location. The calendar grid resolves a full
// week at a time, so this is unpaginated.
func (r *Repository) GetShiftsInRange(from time.Time, to time.Time, locationID int64) ([]*domain.Shift, error) {
	query := `
		SELECT ` + shiftSelectColumns + `
		FROM shifts s
		LEFT JOIN users e ON s.employee_id = e.id
		JOIN shift_types st ON s.shift_type_id = st.id
		JOIN locations l ON s.location_id = l.id
		WHERE s.date >= $1 AND s.date < $2 AND ($3 = 0 OR s.location_id = $3)
		ORDER BY s.date, s.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift, err := scanShift(rows.Scan)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id int64) (*domain.Shift, error) {
	query := `
		SELECT ` + shiftSelectColumns + `
		FROM shifts s
		LEFT JOIN users e ON s.employee_id = e.id
		JOIN shift_types st ON s.shift_type_id = st.id
		JOIN locations l ON s.location_id = l.id
		WHERE s.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	row := r.dbpool.QueryRowContext(ctx, query, id)
	return scanShift(row.Scan)
}

func (r *Repository) CreateShift(shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (employee_id, date, shift_type_id, location_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var employeeID *int64
	if shift.Employee != nil {
		employeeID = &shift.Employee.ID
	}

	args := []any{employeeID, shift.Date, shift.ShiftType.ID, shift.Location.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

// CountShiftsOnDay backs the at-most-one-shift-per-employee-per-day
// invariant checked before assigning.
func (r *Repository) CountShiftsOnDay(employeeID int64, day time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM shifts
		WHERE employee_id = $1 AND date::date = $2::date
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	count := 0
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID, day).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) DeleteShift(id int64) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
