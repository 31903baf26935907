package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

func (r *Repository) GetAllLocations() ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			l.id,
			l.title,
			l.created_at,
			l.updated_at,
			l.version,
			st.id,
			st.title,
			st.start_time,
			st.end_time,
			st.manager_id
		FROM locations l
		LEFT JOIN shift_types st ON l.id = st.location_id
		ORDER BY l.id, st.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locationsMap := make(map[int64]*domain.Location)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Title     string
			CreatedAt time.Time
			UpdatedAt time.Time
			Version   int32

			ShiftTypeID    sql.NullInt64
			ShiftTypeTitle sql.NullString
			StartTime      sql.NullString
			EndTime        sql.NullString
			ManagerID      sql.NullInt64
		}

		dst := []any{
			&row.ID,
			&row.Title,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.Version,
			&row.ShiftTypeID,
			&row.ShiftTypeTitle,
			&row.StartTime,
			&row.EndTime,
			&row.ManagerID,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		location, exists := locationsMap[row.ID]
		if !exists {
			location = &domain.Location{
				ID:         row.ID,
				Title:      row.Title,
				ShiftTypes: make([]domain.ShiftType, 0),
				CreatedAt:  row.CreatedAt,
				UpdatedAt:  row.UpdatedAt,
				Version:    row.Version,
			}
			locationsMap[row.ID] = location
			order = append(order, row.ID)
		}

		// a location without shift types yields one row with NULL columns
		if !row.ShiftTypeID.Valid {
			continue
		}

		shiftType := domain.ShiftType{
			ID:         row.ShiftTypeID.Int64,
			Title:      row.ShiftTypeTitle.String,
			StartTime:  row.StartTime.String,
			EndTime:    row.EndTime.String,
			LocationID: row.ID,
		}
		if row.ManagerID.Valid {
			managerID := row.ManagerID.Int64
			shiftType.ManagerID = &managerID
		}
		location.ShiftTypes = append(location.ShiftTypes, shiftType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	locations := make([]*domain.Location, 0, len(order))
	for _, id := range order {
		locations = append(locations, locationsMap[id])
	}

	return locations, nil
}

func (r *Repository) GetLocationByID(id int64) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT l.title, l.created_at, l.updated_at, l.version
		FROM locations l
		WHERE l.id = $1
	`

	location := &domain.Location{
		ID:         id,
		ShiftTypes: make([]domain.ShiftType, 0),
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&location.Title, &location.CreatedAt, &location.UpdatedAt, &location.Version); err != nil {
		return nil, err
	}

	query = `
		SELECT id, title, start_time, end_time, manager_id
		FROM shift_types
		WHERE location_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		shiftType := domain.ShiftType{
			LocationID: id,
		}
		var managerID sql.NullInt64
		if err := rows.Scan(&shiftType.ID, &shiftType.Title, &shiftType.StartTime, &shiftType.EndTime, &managerID); err != nil {
			return nil, err
		}
		if managerID.Valid {
			shiftType.ManagerID = &managerID.Int64
		}
		location.ShiftTypes = append(location.ShiftTypes, shiftType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return location, nil
}

func (r *Repository) CreateLocation(location *domain.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO locations (title)
		VALUES ($1)
		RETURNING id, created_at, updated_at, version
	`
	if err := tx.QueryRowContext(ctx, query, location.Title).Scan(&location.ID, &location.CreatedAt, &location.UpdatedAt, &location.Version); err != nil {
		return err
	}

	for i := range location.ShiftTypes {
		query = `
			INSERT INTO shift_types (location_id, title, start_time, end_time, manager_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		params := []any{location.ID, location.ShiftTypes[i].Title, location.ShiftTypes[i].StartTime, location.ShiftTypes[i].EndTime, location.ShiftTypes[i].ManagerID}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&location.ShiftTypes[i].ID); err != nil {
			return err
		}
		location.ShiftTypes[i].LocationID = location.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// UpdateLocation rewrites the location title and replaces its owned shift
// types wholesale; the dashboard always submits the full list.
func (r *Repository) UpdateLocation(location *domain.Location) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE locations
		SET
			title = $1,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`
	if err := tx.QueryRowContext(ctx, query, location.Title, location.ID, location.Version).Scan(&location.UpdatedAt, &location.Version); err != nil {
		return err
	}

	query = `
		DELETE FROM shift_types WHERE location_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, location.ID); err != nil {
		return err
	}

	for i := range location.ShiftTypes {
		query = `
			INSERT INTO shift_types (location_id, title, start_time, end_time, manager_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		params := []any{location.ID, location.ShiftTypes[i].Title, location.ShiftTypes[i].StartTime, location.ShiftTypes[i].EndTime, location.ShiftTypes[i].ManagerID}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&location.ShiftTypes[i].ID); err != nil {
			return err
		}
		location.ShiftTypes[i].LocationID = location.ID
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteLocation(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM locations WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
