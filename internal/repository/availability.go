package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

const availabilitySelectColumns = `
	a.id,
	a.date,
	a.created_at,
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

func scanAvailability(scan func(dst ...any) error) (*domain.Availability, error) {
	entry := &domain.Availability{}

	var employeeName sql.NullString
	var managerID sql.NullInt64

	dst := []any{
		&entry.ID,
		&entry.Date,
		&entry.CreatedAt,
		&entry.Employee.ID,
		&employeeName,
		&entry.Employee.Email,
		&entry.ShiftType.ID,
		&entry.ShiftType.Title,
		&entry.ShiftType.StartTime,
		&entry.ShiftType.EndTime,
		&managerID,
		&entry.Location.ID,
		&entry.Location.Title,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	entry.Employee.Role = domain.RoleEmployee
	if employeeName.Valid {
		entry.Employee.Name = &employeeName.String
	}
	entry.ShiftType.LocationID = entry.Location.ID
	if managerID.Valid {
		entry.ShiftType.ManagerID = &managerID.Int64
	}

	return entry, nil
}

func (r *Repository) GetAvailability(locationID int64, page int, limit int) ([]*domain.Availability, int, error) {
	query := `
		SELECT ` + availabilitySelectColumns + `,
			COUNT(*) OVER() AS total
		FROM availability a
		JOIN users e ON a.employee_id = e.id
		JOIN shift_types st ON a.shift_type_id = st.id
		JOIN locations l ON a.location_id = l.id
		WHERE ($1 = 0 OR a.location_id = $1)
		ORDER BY a.date DESC, a.id
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

	entries := make([]*domain.Availability, 0)
	total := 0
	for rows.Next() {
		entry, err := scanAvailability(func(dst ...any) error {
			return rows.Scan(append(dst, &total)...)
		})
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *Repository) GetAvailabilityInRange(from time.Time, to time.Time, locationID int64) ([]*domain.Availability, error) {
	query := `
		SELECT ` + availabilitySelectColumns + `
		FROM availability a
		JOIN users e ON a.employee_id = e.id
		JOIN shift_types st ON a.shift_type_id = st.id
		JOIN locations l ON a.location_id = l.id
		WHERE a.date >= $1 AND a.date < $2 AND ($3 = 0 OR a.location_id = $3)
		ORDER BY a.date, a.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, from, to, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.Availability, 0)
	for rows.Next() {
		entry, err := scanAvailability(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) CreateAvailability(entry *domain.Availability) error {
	query := `
		INSERT INTO availability (employee_id, date, location_id, shift_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.Employee.ID, entry.Date, entry.Location.ID, entry.ShiftType.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return err
	}

	return nil
}
