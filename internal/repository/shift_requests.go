package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

const shiftRequestSelectColumns = `
	sr.id,
	sr.date,
	sr.status,
	sr.created_at,
	sr.version,
	e.id,
	e.name,
	e.email,
	st.id,
	st.title,
	st.start_time,
	st.end_time,
	st.manager_id,
	sr.location_id
`

func scanShiftRequest(scan func(dst ...any) error) (*domain.ShiftRequest, error) {
	request := &domain.ShiftRequest{}

	var employeeName sql.NullString
	var managerID sql.NullInt64

	dst := []any{
		&request.ID,
		&request.Date,
		&request.Status,
		&request.CreatedAt,
		&request.Version,
		&request.Employee.ID,
		&employeeName,
		&request.Employee.Email,
		&request.ShiftType.ID,
		&request.ShiftType.Title,
		&request.ShiftType.StartTime,
		&request.ShiftType.EndTime,
		&managerID,
		&request.LocationID,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	request.Employee.Role = domain.RoleEmployee
	if employeeName.Valid {
		request.Employee.Name = &employeeName.String
	}
	request.ShiftType.LocationID = request.LocationID
	if managerID.Valid {
		request.ShiftType.ManagerID = &managerID.Int64
	}

	return request, nil
}

func (r *Repository) GetShiftRequests(locationID int64, page int, limit int) ([]*domain.ShiftRequest, int, error) {
	query := `
		SELECT ` + shiftRequestSelectColumns + `,
			COUNT(*) OVER() AS total
		FROM shift_requests sr
		JOIN users e ON sr.employee_id = e.id
		JOIN shift_types st ON sr.shift_type_id = st.id
		WHERE ($1 = 0 OR sr.location_id = $1)
		ORDER BY sr.created_at DESC, sr.id
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

	requests := make([]*domain.ShiftRequest, 0)
	total := 0
	for rows.Next() {
		request, err := scanShiftRequest(func(dst ...any) error {
			return rows.Scan(append(dst, &total)...)
		})
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *Repository) GetShiftRequestByID(id int64) (*domain.ShiftRequest, error) {
	query := `
		SELECT ` + shiftRequestSelectColumns + `
		FROM shift_requests sr
		JOIN users e ON sr.employee_id = e.id
		JOIN shift_types st ON sr.shift_type_id = st.id
		WHERE sr.id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	row := r.dbpool.QueryRowContext(ctx, query, id)
	return scanShiftRequest(row.Scan)
}

func (r *Repository) CreateShiftRequest(request *domain.ShiftRequest) error {
	query := `
		INSERT INTO shift_requests (employee_id, date, shift_type_id, location_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{request.Employee.ID, request.Date, request.ShiftType.ID, request.LocationID, request.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&request.ID, &request.CreatedAt, &request.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftRequestStatus(request *domain.ShiftRequest) error {
	query := `
		UPDATE shift_requests
		SET
			status = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, request.Status, request.ID, request.Version).Scan(&request.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftRequest(id int64) error {
	query := `
		DELETE FROM shift_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
